package console

import (
	"strconv"
	"strings"
)

// Request is a single console command line of the form "action?key1=value1&key2=value2".
type Request struct {
	Action string
	params map[string]string
}

// ParseRequest splits the command line into its action and query parameters. Parameters missing a key or a value are dropped.
func ParseRequest(line string) Request {
	parts := strings.SplitN(line, "?", 2)
	r := Request{
		Action: parts[0],
		params: make(map[string]string),
	}
	if len(parts) < 2 {
		return r
	}

	for _, pair := range strings.Split(parts[1], "&") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key, value := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		if key == "" || value == "" {
			continue
		}
		r.params[key] = value
	}
	return r
}

// Param returns the named parameter or def when absent.
func (r Request) Param(name, def string) string {
	if v, ok := r.params[name]; ok {
		return v
	}
	return def
}

// ParamInt returns the named parameter as an integer, or def when it is absent or not a number.
func (r Request) ParamInt(name string, def int) int {
	v, ok := r.params[name]
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
