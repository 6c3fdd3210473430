// Command powerline renders a powerline-style shell prompt.
package main

import (
	"fmt"
	"os"

	"github.com/Veraticus/powerline/internal/shared"
)

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, shared.ErrorStyle.Render("powerline: "+err.Error()))
		os.Exit(1)
	}
}
