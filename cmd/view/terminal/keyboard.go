package terminal

import (
	"fmt"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// Run starts a goroutine to handle terminal events. Closing the
// returned channel signals the viewer is done.
func (v *Viewer) Run() chan struct{} {
	quit := make(chan struct{})

	go func() {
		defer func() {
			if r := recover(); r != nil {
				v.screen.Clear()
				fmt.Println(r)
				debug.PrintStack()
			}
		}()

		for {
			event := v.screen.PollEvent()

			switch ev := event.(type) {
			case *tcell.EventResize:
				v.draw()

			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					close(quit)
					return

				case tcell.KeyRune:
					switch ev.Rune() {
					case 'q':
						close(quit)
						return

					case 'r':
						if err := v.reload(); err != nil {
							v.print(padLeft, 1, err.Error())
						}
					}
				}
			}
		}
	}()

	return quit
}
