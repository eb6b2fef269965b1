package web

import (
	"strconv"
	"strings"
)

// routeKind enumerates the full route vocabulary so unknown-route
// handling is exhaustive instead of stringly-typed branching.
type routeKind int

const (
	routeList routeKind = iota
	routeAdd
	routeDone
	routeDelete
	routeBadID   // done/delete with a non-numeric ID segment
	routeUnknown // anything else
)

// route is a resolved request target with its typed parameter.
type route struct {
	kind routeKind
	id   int // set for routeDone and routeDelete
}

// resolve maps a method + path onto a route value.
func resolve(method, path string) route {
	if method == "GET" && path == "/" {
		return route{kind: routeList}
	}
	if method != "POST" {
		return route{kind: routeUnknown}
	}
	if path == "/add" {
		return route{kind: routeAdd}
	}
	if raw, ok := strings.CutPrefix(path, "/done/"); ok {
		return idRoute(routeDone, raw)
	}
	if raw, ok := strings.CutPrefix(path, "/delete/"); ok {
		return idRoute(routeDelete, raw)
	}
	return route{kind: routeUnknown}
}

func idRoute(kind routeKind, raw string) route {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return route{kind: routeBadID}
	}
	return route{kind: kind, id: id}
}
