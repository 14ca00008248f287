package country

// Attribute names carried by path elements in Natural Earth derived world
// maps. Each map shape is a <path> whose metadata rides along as custom
// data-* attributes next to the geometry.
const (
	AttrID           = "id"
	AttrLocalName    = "data-name_zht"
	AttrLocalNameAlt = "data-name_zh"
	AttrEnglishName  = "data-name_en"
	AttrFormalName   = "data-formal_en"
	AttrType         = "data-type"
	AttrSovereignty  = "data-sovereignt"
)

// DataAttrs lists the data-* attributes a record is assembled from, in field
// order. The bare id attribute is handled separately because its name is a
// substring of several data-* names.
var DataAttrs = []string{
	AttrLocalName,
	AttrLocalNameAlt,
	AttrEnglishName,
	AttrFormalName,
	AttrType,
	AttrSovereignty,
}

// Record is one country or territory extracted from the map. Fields mirror
// the source attributes; absent attributes come through as empty strings so
// the serialized shape stays fixed.
type Record struct {
	ID          string `json:"id"`
	NameLocal   string `json:"name_local"`
	NameEN      string `json:"name_en"`
	FormalEN    string `json:"formal_en"`
	Type        string `json:"type"`
	Sovereignty string `json:"sovereignty"`
}

// FromAttrs assembles a Record from a raw attribute map and reports whether
// it is worth keeping. The local name falls back through the traditional
// form, the simplified form, and finally the element id; an attribute that is
// present but empty counts as absent. Shapes with neither a local nor an
// English name are decorative geometry (lakes, graticules) and are dropped.
func FromAttrs(attrs map[string]string) (Record, bool) {
	rec := Record{
		ID:          attrs[AttrID],
		NameLocal:   attrs[AttrLocalName],
		NameEN:      attrs[AttrEnglishName],
		FormalEN:    attrs[AttrFormalName],
		Type:        attrs[AttrType],
		Sovereignty: attrs[AttrSovereignty],
	}
	if rec.NameLocal == "" {
		rec.NameLocal = attrs[AttrLocalNameAlt]
	}
	if rec.NameLocal == "" {
		rec.NameLocal = rec.ID
	}
	if rec.NameLocal == "" && rec.NameEN == "" {
		return Record{}, false
	}
	return rec, true
}
