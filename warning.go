package trailnet

type WarningKind uint16

const (
	WARN_MALFORMED_ELEMENT = WarningKind(iota + 1)
	WARN_DANGLING_REFERENCE
	WARN_NO_PATH_FOUND
	WARN_ENUMERATION_CAPPED
	WARN_TRIVIAL_COMPONENT
)

func (iotaIdx WarningKind) String() string {
	return [...]string{"malformed_element", "dangling_reference", "no_path_found", "enumeration_capped", "trivial_component"}[iotaIdx-1]
}

// Warning is a non-fatal processing event recorded for the caller to inspect.
// The reconstruction run always continues past a warning.
type Warning struct {
	Kind    WarningKind
	Message string
	// Processed and Total carry the pair-enumeration counters for
	// WARN_ENUMERATION_CAPPED; zero for every other kind.
	Processed int
	Total     int
}
