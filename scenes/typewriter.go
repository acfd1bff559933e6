package scenes

// DefaultTypewriterTicks is the number of logic ticks between two revealed
// characters.
const DefaultTypewriterTicks = 3

// Typewriter reveals a string one character per Ticks logic ticks. The first
// character appears on tick Ticks+1.
type Typewriter struct {
	Ticks int

	full     []rune
	shown    int
	cooldown int
}

// NewTypewriter returns a typewriter for s with DefaultTypewriterTicks.
func NewTypewriter(s string) *Typewriter {
	return &Typewriter{
		Ticks:    DefaultTypewriterTicks,
		full:     []rune(s),
		cooldown: DefaultTypewriterTicks,
	}
}

// Tick advances by one logic tick.
func (t *Typewriter) Tick() {
	if t.cooldown < 1 && t.shown < len(t.full) {
		t.cooldown = t.Ticks
		t.shown++
	}
	t.cooldown--
	if t.cooldown < 0 {
		t.cooldown = 0
	}
}

// Text returns the revealed prefix.
func (t *Typewriter) Text() string { return string(t.full[:t.shown]) }

// Done reports whether the whole string is revealed.
func (t *Typewriter) Done() bool { return t.shown == len(t.full) }

// Reset hides everything again.
func (t *Typewriter) Reset() {
	t.shown = 0
	t.cooldown = t.Ticks
}
