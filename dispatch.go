package tidyjson

import "sync"

// Response is the settled outcome of one submitted request: either the
// formatted text or a validation failure. Err is nil on success.
type Response struct {
	Text string
	Err  *Error
}

type job struct {
	req   Request
	reply chan Response
}

var (
	workerOnce sync.Once
	inbox      chan job
)

// Submit posts one request to the formatting worker and returns the channel
// its response will arrive on. The worker goroutine is started on first use
// and lives for the remainder of the process; it handles one request at a
// time in arrival order, so responses for requests submitted from a single
// goroutine arrive in submission order. Validation happens inside the
// worker, before formatting; a rejected request does not affect later ones.
func Submit(req Request) <-chan Response {
	workerOnce.Do(func() {
		inbox = make(chan job)
		go serve(inbox)
	})
	reply := make(chan Response, 1)
	inbox <- job{req: req, reply: reply}
	return reply
}

// Format submits a request built from the three raw parameters and waits
// for its response. Pass nil for tab or codesLineLength to take the
// defaults (single space, 1).
func Format(json, tab, codesLineLength any) (string, error) {
	resp := <-Submit(Request{JSON: json, Tab: tab, CodesLineLength: codesLineLength})
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

func serve(jobs <-chan job) {
	for j := range jobs {
		text, opts, err := j.req.normalize()
		if err != nil {
			j.reply <- Response{Err: err}
			continue
		}
		j.reply <- Response{Text: string(Indent([]byte(text), opts))}
	}
}
