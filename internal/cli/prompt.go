package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
)

// promptIn is the reader the confirmation prompt consumes. It is a
// variable so tests can feed answers without touching os.Stdin.
var promptIn io.Reader = os.Stdin

// confirmProceed asks the operator whether to go ahead with the import,
// reading the answer from r. The default answer is yes; only an explicit
// "n"/"no" declines. An interrupt or EOF while waiting counts as decline,
// so a Ctrl-C at the prompt never writes anything.
func confirmProceed(r io.Reader) bool {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	lineCh := make(chan string, 1)
	eofCh := make(chan struct{}, 1)
	go func() {
		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && line == "" {
			eofCh <- struct{}{}
			return
		}
		lineCh <- line
	}()

	initColors()
	_, _ = promptColor.Print("Proceed with import? [Y/n]: ")

	select {
	case <-sigCh:
		fmt.Println()
		return false
	case <-eofCh:
		fmt.Println()
		return false
	case line := <-lineCh:
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer != "n" && answer != "no"
	}
}
