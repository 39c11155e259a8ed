package main

import (
	"github.com/gizmo-platform/trivia/internal/cmdlets"
)

func main() {
	cmdlets.Entrypoint()
}
