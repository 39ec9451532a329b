package behold

import (
	"fmt"
	"io"
	"os"

	"rafal.dev/behold/pkg/context"
)

// Output is the destination Show writes to. It defaults to standard
// output.
var Output io.Writer = os.Stdout

// Instance gates a single debug call site. It is configured by
// chaining When, WhenContext and Tag, and consumed by Show or Call.
// Instances are values; every builder method returns a modified copy,
// so an Instance is never shared between goroutines.
type Instance struct {
	speakUp bool
	tag     string
	tagged  bool
}

// New returns an Instance that speaks up and carries no tag.
func New() Instance {
	return Instance{speakUp: true}
}

// When returns an instance that speaks up or not, depending on flag.
func (i Instance) When(flag bool) Instance {
	i.speakUp = flag
	return i
}

// WhenContext returns an instance gated on the named context switch.
// The switch is read once, at call time; flipping it later does not
// affect the returned instance.
func (i Instance) WhenContext(key string) Instance {
	i.speakUp = context.Get(key)
	return i
}

// Tag returns an instance that appends tag to its output.
func (i Instance) Tag(tag string) Instance {
	i.tag = tag
	i.tagged = true
	return i
}

// Show prints msg when the instance speaks up. Untagged output reads
// "Behold: {msg}"; tagged output reads "{msg}, {tag}" with no prefix.
// The asymmetry is odd but load-bearing: existing consumers parse
// both forms.
func (i Instance) Show(msg string) {
	if !i.speakUp {
		return
	}

	if i.tagged {
		fmt.Fprintf(Output, "%s, %s\n", msg, i.tag)
	} else {
		fmt.Fprintf(Output, "Behold: %s\n", msg)
	}
}

// Showf is Show with fmt.Sprintf formatting.
func (i Instance) Showf(format string, args ...any) {
	i.Show(fmt.Sprintf(format, args...))
}

// Call invokes fn exactly once, on the calling goroutine, when the
// instance speaks up.
func (i Instance) Call(fn func()) {
	if i.speakUp && fn != nil {
		fn()
	}
}

// SetContext sets the named switch in the global context, so one part
// of a program can turn another part's future output on or off.
func SetContext(key string, value bool) {
	context.Set(key, value)
}
