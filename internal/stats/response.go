package stats

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNoResultSets is returned when a body has no resultSets to decode.
var ErrNoResultSets = errors.New("stats: response has no result sets")

// ResultSet is one named table of a stats response.
type ResultSet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Column returns the index of the header matching name, case-insensitively,
// or -1.
func (rs ResultSet) Column(name string) int {
	for i, h := range rs.Headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// Records zips each row with the headers. Short rows leave trailing headers
// unset; extra cells are dropped.
func (rs ResultSet) Records() []map[string]any {
	out := make([]map[string]any, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		rec := make(map[string]any, len(rs.Headers))
		for i, h := range rs.Headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

// Filter returns the rows whose record satisfies keep, under the same name
// and headers.
func (rs ResultSet) Filter(keep func(rec map[string]any) bool) ResultSet {
	out := ResultSet{Name: rs.Name, Headers: rs.Headers}
	for i, rec := range rs.Records() {
		if keep(rec) {
			out.Rows = append(out.Rows, rs.Rows[i])
		}
	}
	return out
}

// Search keeps the rows where any of the given columns contains query,
// ignoring case.
func (rs ResultSet) Search(query string, columns ...string) ResultSet {
	q := strings.ToLower(query)
	return rs.Filter(func(rec map[string]any) bool {
		for _, c := range columns {
			if strings.Contains(strings.ToLower(Text(rec[c])), q) {
				return true
			}
		}
		return false
	})
}

// Select projects the set onto the named columns, in that order. Unknown
// columns are dropped.
func (rs ResultSet) Select(columns ...string) ResultSet {
	var idx []int
	out := ResultSet{Name: rs.Name}
	for _, c := range columns {
		if i := rs.Column(c); i >= 0 {
			idx = append(idx, i)
			out.Headers = append(out.Headers, rs.Headers[i])
		}
	}
	for _, row := range rs.Rows {
		vals := make([]any, len(idx))
		for j, i := range idx {
			if i < len(row) {
				vals[j] = row[i]
			}
		}
		out.Rows = append(out.Rows, vals)
	}
	return out
}

// Distinct drops rows that display the same as an earlier row.
func (rs ResultSet) Distinct() ResultSet {
	out := ResultSet{Name: rs.Name, Headers: rs.Headers}
	seen := make(map[string]bool, len(rs.Rows))
	for _, row := range rs.Rows {
		var key strings.Builder
		for _, v := range row {
			key.WriteString(Text(v))
			key.WriteByte(0)
		}
		if seen[key.String()] {
			continue
		}
		seen[key.String()] = true
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Text formats a decoded cell for display.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		// ids and counts come back as whole floats
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return fmt.Sprintf("%.0f", t)
		}
		return fmt.Sprintf("%g", t)
	}
	return fmt.Sprint(v)
}

// Response is a decoded stats endpoint reply.
type Response struct {
	Resource   string
	Parameters map[string]any
	Sets       []ResultSet
}

// Set returns the result set with the given name, case-insensitively.
func (r *Response) Set(name string) (ResultSet, bool) {
	for _, s := range r.Sets {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return ResultSet{}, false
}

// ParseResponse decodes a stats body. Both the list form ("resultSets": [...])
// and the single-object form ("resultSet": {...}) are accepted.
func ParseResponse(body []byte) (*Response, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("stats: invalid json body (%d bytes)", len(body))
	}
	root := gjson.ParseBytes(body)

	sets := root.Get("resultSets")
	if !sets.Exists() {
		sets = root.Get("resultSet")
	}
	if !sets.Exists() {
		return nil, ErrNoResultSets
	}

	resp := &Response{Resource: root.Get("resource").String()}
	if params, ok := root.Get("parameters").Value().(map[string]any); ok {
		resp.Parameters = params
	}
	if sets.IsObject() {
		resp.Sets = append(resp.Sets, parseSet(sets))
	} else {
		for _, s := range sets.Array() {
			resp.Sets = append(resp.Sets, parseSet(s))
		}
	}
	if len(resp.Sets) == 0 {
		return nil, ErrNoResultSets
	}
	return resp, nil
}

func parseSet(s gjson.Result) ResultSet {
	rs := ResultSet{Name: s.Get("name").String()}
	for _, h := range s.Get("headers").Array() {
		rs.Headers = append(rs.Headers, h.String())
	}
	for _, row := range s.Get("rowSet").Array() {
		cells := row.Array()
		vals := make([]any, len(cells))
		for i, c := range cells {
			vals[i] = c.Value()
		}
		rs.Rows = append(rs.Rows, vals)
	}
	return rs
}
