package server

import (
	"strconv"
	"strings"
)

// parseNightPath splits an /api/nights/ URL into the night id and the
// remaining segments, e.g. /api/nights/night-1/rounds/3/move ->
// ("night-1", ["rounds", "3", "move"]).
func parseNightPath(path string) (string, []string, bool) {
	const prefix = "/api/nights/"
	if !strings.HasPrefix(path, prefix) {
		return "", nil, false
	}
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "", nil, false
	}
	return parts[0], parts[1:], true
}

// parseRoundSegments reads ["rounds", "<id>", maybeAction].
func parseRoundSegments(parts []string) (int, string, bool) {
	if len(parts) < 2 || len(parts) > 3 || parts[0] != "rounds" {
		return 0, "", false
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil || id <= 0 {
		return 0, "", false
	}
	if len(parts) == 2 {
		return id, "", true
	}
	return id, parts[2], true
}

func parseWebsocketPath(path string) (string, bool) {
	const prefix = "/ws/nights/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

func parseNightViewPath(path string) (string, bool) {
	const prefix = "/nights/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(path, prefix)
	id = strings.Trim(id, "/")
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func parseWatchPath(path string) (string, bool) {
	const prefix = "/watch/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	code := strings.TrimPrefix(path, prefix)
	code = strings.Trim(code, "/")
	if code == "" || strings.Contains(code, "/") {
		return "", false
	}
	return code, true
}
