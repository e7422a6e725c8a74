package typeinfo

// Kind classifies a Descriptor.
type Kind uint8

const (
	KindBasic Kind = iota
	KindTuple
	KindGeneric
	KindValue
	KindArray
)

var kindNames = [...]string{
	KindBasic:   "basic",
	KindTuple:   "tuple",
	KindGeneric: "generic",
	KindValue:   "value",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
