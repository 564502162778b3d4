package utils

import (
	"fmt"
	"log"

	"github.com/ttacon/chalk"
)

func announceFailure(msg string) {
	fmt.Print(chalk.Red)
	log.Print(msg, chalk.Reset)
}

// Check panics with msg when err is non-nil.
func Check(err error, msg string) {
	if err == nil {
		return
	}

	announceFailure(msg)
	log.Panicln(err)
}

// Assert panics with msg when the condition does not hold.
func Assert(ok bool, msg string) {
	if ok {
		return
	}

	announceFailure(msg)
	log.Panic()
}
