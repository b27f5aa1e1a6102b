package schematic

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// flexString accepts either a JSON string or a JSON number. Upstream data
// generators are inconsistent about whether ids and pin numbers are quoted,
// and pin lookups compare strings, so both forms are coerced here.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// UnmarshalJSON coerces numeric pin numbers to strings and normalizes the
// side to lower case. An unknown side is kept empty so the pin locator
// applies its left-side default.
func (p *Pin) UnmarshalJSON(b []byte) error {
	var raw struct {
		Number flexString `json:"pinNumber"`
		Name   string     `json:"name"`
		Side   string     `json:"side"`
		Type   string     `json:"type"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.Number = string(raw.Number)
	p.Name = raw.Name
	p.Type = raw.Type
	side := Side(strings.ToLower(raw.Side))
	if side.Valid() {
		p.Side = side
	}
	return nil
}

func (c *Component) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID   flexString `json:"id"`
		Name string     `json:"name"`
		Pins []Pin      `json:"pins"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.ID = string(raw.ID)
	c.Name = raw.Name
	c.Pins = raw.Pins
	return nil
}

func (n *Net) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID          flexString   `json:"id"`
		Name        string       `json:"name"`
		Class       string       `json:"type"`
		Connections []Connection `json:"connections"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	n.ID = string(raw.ID)
	n.Name = raw.Name
	n.Class = NetClass(strings.ToLower(raw.Class))
	n.Connections = raw.Connections
	return nil
}

func (c *Connection) UnmarshalJSON(b []byte) error {
	var raw struct {
		ComponentID flexString `json:"componentId"`
		Pin         flexString `json:"pin"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.ComponentID = string(raw.ComponentID)
	c.Pin = string(raw.Pin)
	return nil
}

// ParseJSON decodes a design from JSON bytes.
func ParseJSON(data []byte) (*Design, error) {
	var d Design
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("schematic: decode design: %w", err)
	}
	return &d, nil
}

// LoadJSON decodes a design from a reader.
func LoadJSON(r io.Reader) (*Design, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("schematic: read design: %w", err)
	}
	return ParseJSON(data)
}

// LoadJSONFile decodes a design from a JSON file.
func LoadJSONFile(path string) (*Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schematic: open design: %w", err)
	}
	defer f.Close()
	return LoadJSON(f)
}
