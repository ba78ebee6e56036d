// Package api provides a read-only client for the zpodfactory API.
package api

import "encoding/json"

// ZPod is a provisioned virtual lab environment record.
//
// Scalar root fields are typed as any so that fields the API omits or
// nulls stay nil all the way into the template namespace instead of
// collapsing to Go zero values.
type ZPod struct {
	ID               any              `json:"id"`
	Name             string           `json:"name"`
	Description      any              `json:"description"`
	Domain           any              `json:"domain"`
	Password         any              `json:"password"`
	Profile          any              `json:"profile"`
	Status           any              `json:"status"`
	CreationDate     any              `json:"creation_date"`
	LastModifiedDate any              `json:"last_modified_date"`
	Components       []map[string]any `json:"components"`
	Networks         []map[string]any `json:"networks"`
	Endpoint         any              `json:"endpoint"`
	Features         any              `json:"features"`
	Permissions      []any            `json:"permissions"`
}

// Setting is a global zPodFactory setting. Raw carries the full decoded
// object so templates see every field the API returned, not just the
// name/value pair the generator itself consumes.
type Setting struct {
	Name  string
	Value any
	Raw   map[string]any
}

// UnmarshalJSON keeps the raw object alongside the extracted fields.
func (s *Setting) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Raw = raw
	s.Name, _ = raw["name"].(string)
	s.Value = raw["value"]
	return nil
}

// DNSRecord is an opaque DNS entry, passed through to templates unmodified.
type DNSRecord = map[string]any
