package vision

import (
	"fmt"
	"os"
)

func (v *Vision) writeLog(s string) {
	if !v.debug {
		return
	}

	f, _ := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	defer f.Close()

	f.WriteString(s + "\n")
}

func (v *Vision) writeLogf(format string, args ...any) {
	if !v.debug {
		return
	}

	f, _ := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	defer f.Close()

	fmt.Fprintf(f, format+"\n", args...)
}
