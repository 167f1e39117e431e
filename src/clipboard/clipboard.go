package clipboard

import (
	"errors"
	"fmt"
	"runtime"

	sysclip "github.com/atotto/clipboard"
)

//ErrUnavailable is returned when no clipboard mechanism can be reached
var ErrUnavailable = errors.New("clipboard unavailable")

//Sink receives the rendered text
type Sink interface {
	Write(text string) error
}

//System writes to the operating system clipboard
//on Linux one of xsel, xclip, wl-copy or termux-clipboard-set has to be installed
type System struct {
	unsupported func() bool
	writeAll    func(text string) error
}

func NewSystem() *System {
	return &System{
		unsupported: func() bool { return sysclip.Unsupported },
		writeAll:    sysclip.WriteAll,
	}
}

//Write replaces the clipboard contents with text
func (s *System) Write(text string) error {
	if s.unsupported() {
		return fmt.Errorf("%w: no clipboard utility found on %s", ErrUnavailable, runtime.GOOS)
	}
	if err := s.writeAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
