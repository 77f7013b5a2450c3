package crisp

import (
	"io"
	"io/ioutil"
	"log"
)

var logger = log.New(ioutil.Discard, "crisp: ", log.LstdFlags|log.Lmsgprefix)

// SetLogOutput enables evaluation tracing on w. Tracing is off by default.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}
