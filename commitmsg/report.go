package commitmsg

// Reporter receives rule violations. Report must not stop the caller.
type Reporter interface {
	Report(violation string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(violation string)

func (f ReporterFunc) Report(violation string) {
	f(violation)
}

// Collector keeps every violation it is given, in order.
type Collector struct {
	Violations []string
}

func (c *Collector) Report(violation string) {
	c.Violations = append(c.Violations, violation)
}

func (c *Collector) Failed() bool {
	return len(c.Violations) > 0
}

// Counter forwards violations to Next and counts them.
type Counter struct {
	Next  Reporter
	Count int
}

func (c *Counter) Report(violation string) {
	c.Count++
	if c.Next != nil {
		c.Next.Report(violation)
	}
}
