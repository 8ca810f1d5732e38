package core

import "strings"

// SplitParams flattens repeatable, comma-separated parameter values
// ("a,b", "c" -> a, b, c), trimming items and dropping empty ones.
// Returns nil when nothing remains.
func SplitParams(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// ResolveFields picks the field selection for a request: an explicit list
// wins, then a profile id, then fallback.
func (s *Service) ResolveFields(profileID string, explicit, fallback []string) ([]string, error) {
	if len(explicit) > 0 {
		return append([]string{}, explicit...), nil
	}
	if profileID != "" {
		p, err := s.profiles.Get(profileID)
		if err != nil {
			return nil, err
		}
		return p.Fields, nil
	}
	return append([]string{}, fallback...), nil
}
