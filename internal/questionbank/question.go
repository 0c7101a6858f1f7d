package questionbank

// GapType is a label naming a category of strategic or process deficiency.
// Options carry the gap types they implicate when chosen.
type GapType string

const (
	GapProcess     GapType = "processo"
	GapAutomation  GapType = "automação"
	GapData        GapType = "dados"
	GapStrategy    GapType = "estratégia"
	GapContent     GapType = "conteúdo"
	GapConversion  GapType = "conversão"
	GapAcquisition GapType = "aquisição"
	GapTeam        GapType = "equipe"
)

// KnownGapTypes returns the gap types the built-in taxonomy describes, in
// display order. Banks may reference other tags.
func KnownGapTypes() []GapType {
	return []GapType{
		GapStrategy,
		GapProcess,
		GapAutomation,
		GapData,
		GapContent,
		GapAcquisition,
		GapConversion,
		GapTeam,
	}
}

// Option is a single answer choice.
type Option struct {
	ID   string
	Text string

	// Weight is the health score of this answer: 1 is ideal, 0 is worst.
	Weight float64

	// GapTypes lists the gap categories this answer implicates.
	GapTypes []GapType
}

// HasGap reports whether the option implicates the given gap type.
func (o Option) HasGap(t GapType) bool {
	for _, g := range o.GapTypes {
		if g == t {
			return true
		}
	}
	return false
}

// Question is a single questionnaire item with ordered answer options.
type Question struct {
	ID      string
	Text    string
	Options []Option
}

// Option returns the option with the given ID.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// OptionIndex returns the position of the option with the given ID, or -1.
func (q Question) OptionIndex(id string) int {
	for i, o := range q.Options {
		if o.ID == id {
			return i
		}
	}
	return -1
}
