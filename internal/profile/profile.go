// Package profile parses the gate-cost profile file format of spec section
// 6: UTF-8 text, one `KIND CONTROLS COST` entry per non-empty line, `#`
// starts a comment.
package profile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is one row of a gate-cost profile.
type Entry struct {
	Kind     string
	Controls int
	Cost     uint
}

// Profile is a parsed gate-cost table, queried by the GateCost application
// scheme (spec section 4.3).
type Profile struct {
	entries map[string]uint
}

// Parse reads a gate-cost profile from r. Malformed lines produce an
// InvalidInput-class error (spec section 7).
func Parse(r io.Reader) (*Profile, error) {
	p := &Profile{entries: make(map[string]uint)}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	//
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		//
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		//
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		//
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("profile: malformed line %d: %q", lineNo, line)
		}
		//
		controls, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("profile: line %d: invalid CONTROLS: %w", lineNo, err)
		}
		//
		cost, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("profile: line %d: invalid COST: %w", lineNo, err)
		}
		//
		p.entries[key(fields[0], controls)] = uint(cost)
	}
	//
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	//
	return p, nil
}

func key(kind string, controls int) string {
	return fmt.Sprintf("%s\x00%d", kind, controls)
}

// Entries returns every parsed row, in no particular order; used by the
// "profile" CLI command to echo back what was parsed.
func (p *Profile) Entries() []Entry {
	out := make([]Entry, 0, len(p.entries))
	//
	for k, cost := range p.entries {
		sep := strings.IndexByte(k, 0)
		controls, _ := strconv.Atoi(k[sep+1:])
		out = append(out, Entry{Kind: k[:sep], Controls: controls, Cost: cost})
	}
	//
	return out
}

// Cost returns the tabulated cost for kind/controls, falling back to 1 when
// no entry matches (spec section 4.3).
func (p *Profile) Cost(kind string, controls int) uint {
	if p == nil {
		return 1
	}
	//
	if c, ok := p.entries[key(kind, controls)]; ok {
		return c
	}
	//
	return 1
}
