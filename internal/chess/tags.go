package chess

import (
	"golang.org/x/exp/maps"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// rosterDefaults holds the placeholder values of the Seven Tag Roster.
var rosterDefaults = map[string]string{
	"Event":  "?",
	"Site":   "?",
	"Date":   "????.??.??",
	"Round":  "?",
	"White":  "?",
	"Black":  "?",
	"Result": "*",
}

// SupplementalTags lists the well-known optional tags. They are part of the
// header template, so they print in this order when set.
var SupplementalTags = []string{
	"WhiteTitle",
	"BlackTitle",
	"WhiteElo",
	"BlackElo",
	"WhiteUSCF",
	"BlackUSCF",
	"WhiteNA",
	"BlackNA",
	"WhiteType",
	"BlackType",
	"EventDate",
	"EventSponsor",
	"Section",
	"Stage",
	"Board",
	"Opening",
	"Variation",
	"SubVariation",
	"ECO",
	"NIC",
	"Time",
	"UTCTime",
	"UTCDate",
	"TimeControl",
	"SetUp",
	"FEN",
	"Termination",
	"Annotator",
	"Mode",
	"PlyCount",
}

// Tag names maintained by the game itself.
const (
	ResultTag = "Result"
	SetUpTag  = "SetUp"
	FENTag    = "FEN"
)

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	_, ok := rosterDefaults[tag]
	return ok
}

// RosterDefault returns the placeholder value of a roster tag.
func RosterDefault(tag string) (string, bool) {
	v, ok := rosterDefaults[tag]
	return v, ok
}

// TagPair is a single header entry.
type TagPair struct {
	Name  string
	Value string
}

// Tags is an ordered header table. Keys keep their first insertion order,
// starting with the template (roster then supplemental tags). A key may be
// present without a value; such entries are skipped by Entries.
type Tags struct {
	order  []string
	values map[string]string
	known  map[string]struct{}
}

// NewTags returns a table initialised from the header template.
func NewTags() *Tags {
	t := &Tags{
		order:  make([]string, 0, len(SevenTagRoster)+len(SupplementalTags)),
		values: make(map[string]string, len(SevenTagRoster)),
		known:  make(map[string]struct{}, len(SevenTagRoster)+len(SupplementalTags)),
	}
	for _, name := range SevenTagRoster {
		t.addKey(name)
		t.values[name] = rosterDefaults[name]
	}
	for _, name := range SupplementalTags {
		t.addKey(name)
	}
	return t
}

func (t *Tags) addKey(name string) {
	if _, ok := t.known[name]; ok {
		return
	}
	t.known[name] = struct{}{}
	t.order = append(t.order, name)
}

// Set stores value under name. An empty value falls back to the roster
// placeholder, or leaves the entry unset for other tags.
func (t *Tags) Set(name, value string) {
	t.addKey(name)
	if value == "" {
		value = rosterDefaults[name]
	}
	if value == "" {
		delete(t.values, name)
		return
	}
	t.values[name] = value
}

// Unset clears the value of name while keeping its position.
func (t *Tags) Unset(name string) {
	t.addKey(name)
	delete(t.values, name)
}

// Remove resets name to its roster placeholder (or no value). It reports
// false when the key has never been part of the table.
func (t *Tags) Remove(name string) bool {
	if _, ok := t.known[name]; !ok {
		return false
	}
	if def, ok := rosterDefaults[name]; ok {
		t.values[name] = def
	} else {
		delete(t.values, name)
	}
	return true
}

// Get returns the value of name and whether it is set.
func (t *Tags) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Entries returns every set tag in table order.
func (t *Tags) Entries() []TagPair {
	pairs := make([]TagPair, 0, len(t.values))
	for _, name := range t.order {
		if v, ok := t.values[name]; ok {
			pairs = append(pairs, TagPair{Name: name, Value: v})
		}
	}
	return pairs
}

// Map returns the set tags as a map.
func (t *Tags) Map() map[string]string {
	return maps.Clone(t.values)
}

// Clone returns an independent copy.
func (t *Tags) Clone() *Tags {
	c := &Tags{
		order:  append([]string(nil), t.order...),
		values: make(map[string]string, len(t.values)),
		known:  make(map[string]struct{}, len(t.known)),
	}
	maps.Copy(c.values, t.values)
	maps.Copy(c.known, t.known)
	return c
}
