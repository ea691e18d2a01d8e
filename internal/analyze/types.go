package analyze

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "datamapper/primitive"
	Name    string // e.g., "KindEnum"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// EnumInfo describes an enum type and its members.
type EnumInfo struct {
	ID         TypeID
	PkgName    string   // package name used to qualify members
	Underlying string   // basic underlying type, e.g. "int" or "string"
	Members    []Member // in declaration order
}

// Member is one named constant of an enum type.
type Member struct {
	Name  string
	Value string // exact constant value, e.g. "3" or `"open"`
}

// Names returns the member names in declaration order.
func (e *EnumInfo) Names() []string {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.Name
	}

	return names
}

// EnumSet holds the enums of all loaded packages.
type EnumSet struct {
	// Enums maps TypeID to its EnumInfo.
	Enums map[TypeID]*EnumInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewEnumSet creates a new empty EnumSet.
func NewEnumSet() *EnumSet {
	return &EnumSet{
		Enums:    make(map[TypeID]*EnumInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetEnum returns the EnumInfo for a given TypeID, or nil if not found.
func (s *EnumSet) GetEnum(id TypeID) *EnumInfo {
	return s.Enums[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Enums []TypeID // Enum types defined in this package, sorted by name
}
