package graph

import (
	"strings"

	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
	"github.com/dynalabs/rategraph/namer"
)

// splitPath splits a slash-delimited 'node/operator/variable' address.
// Nested circuits contribute additional leading node segments; the last
// two segments always address the operator and the variable.
func splitPath(path string) (node, operator, variable string, err error) {
	segments := strings.Split(path, "/")
	if len(segments) < 3 {
		return "", "", "", errors.Newf(class.GraphPortPath,
			"path: '%s' must be a slash-delimited 'node/operator/variable' address", path)
	}
	for _, segment := range segments {
		if segment == "" {
			return "", "", "", errors.Newf(class.GraphPortPath, "path: '%s' has an empty segment", path)
		}
	}
	n := len(segments)
	return strings.Join(segments[:n-2], "/"), segments[n-2], segments[n-1], nil
}

// joinPath prefixes a node-local name with the enclosing circuit path.
func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func sameVariable(a, b string) bool {
	return namer.SameVariable(a, b)
}
