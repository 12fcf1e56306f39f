package clipboard

// verifyOutcome is deliberately three-valued: an absent or failing reader
// must never be confused with a verified-empty clipboard.
type verifyOutcome int

const (
	verifyInconclusive verifyOutcome = iota
	verifyConfirmed
	verifyEmpty
)

// verify reads the clipboard back through the candidate's paired read tool
// and reports whether it holds anything. Candidates without a read tool, and
// readers that are absent or fail to run, yield verifyInconclusive: the
// write is assumed to have worked when it cannot be checked. verifyEmpty is
// returned only when the reader ran cleanly and produced zero bytes.
func (c *Cascade) verify(cand Candidate) verifyOutcome {
	if cand.ReadTool == "" {
		return verifyInconclusive
	}
	if _, err := c.lookPath(cand.ReadTool); err != nil {
		return verifyInconclusive
	}
	out, err := c.run.output(cand.ReadTool, cand.ReadArgs)
	if err != nil {
		return verifyInconclusive
	}
	if len(out) == 0 {
		return verifyEmpty
	}
	return verifyConfirmed
}
