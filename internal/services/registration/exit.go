package registration

// ExitCode maps the result of a run to the process exit status: 0 on
// success (including already registered), 1 on any failure.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
