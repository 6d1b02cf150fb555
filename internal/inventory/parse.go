package inventory

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseContainers decodes `ps --format json` output. Podman emits a single
// JSON array; docker emits newline-delimited objects. A whole-document parse
// is attempted first with a per-line fallback; empty input is an empty list.
func ParseContainers(data []byte) ([]Container, error) {
	entries, err := decodeList[psEntry](data)
	if err != nil {
		return nil, err
	}
	containers := make([]Container, 0, len(entries))
	for _, e := range entries {
		containers = append(containers, Container{
			Names:  e.Names,
			State:  e.State,
			Labels: e.Labels,
		})
	}
	return containers, nil
}

func decodeList[T any](data []byte) ([]T, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}

	var list []T
	if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
		return list, nil
	}

	var out []T
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			return nil, fmt.Errorf("parse container json: %w", err)
		}
		out = append(out, item)
	}
	return out, nil
}

type psEntry struct {
	Names  flexNames  `json:"Names"`
	State  string     `json:"State"`
	Labels flexLabels `json:"Labels"`
}

// flexNames accepts both name encodings the runtimes use: podman reports a
// JSON list, docker a single comma-joined string. Runtimes alternately
// prefix names with a path separator; the prefix is stripped so membership
// checks compare like with like.
type flexNames []string

func (n *flexNames) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*n = normalizeNames(list)
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		if strings.TrimSpace(joined) == "" {
			*n = nil
			return nil
		}
		*n = normalizeNames(strings.Split(joined, ","))
		return nil
	}
	return fmt.Errorf("container names are neither a list nor a string: %s", data)
}

func normalizeNames(raw []string) []string {
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimPrefix(strings.TrimSpace(name), "/")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// flexLabels accepts podman's label mapping, docker's "k=v,k2=v2" string,
// and null, normalizing all three to a map.
type flexLabels map[string]string

func (l *flexLabels) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = flexLabels{}
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err == nil {
		if m == nil {
			m = map[string]string{}
		}
		*l = m
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		parsed := map[string]string{}
		for _, pair := range strings.Split(joined, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			key, value, ok := strings.Cut(pair, "=")
			if !ok {
				continue
			}
			parsed[key] = value
		}
		*l = parsed
		return nil
	}
	return fmt.Errorf("container labels are neither a map nor a string: %s", data)
}
