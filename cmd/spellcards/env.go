package main

import (
	"context"
	"io"
	"os"

	spellcards "github.com/alnah/go-spellcards"
)

// Generator is the part of spellcards.Generator the CLI uses.
type Generator interface {
	Generate(ctx context.Context, in spellcards.Input) (*spellcards.Result, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout       io.Writer
	Stderr       io.Writer
	NewGenerator func(opts ...spellcards.Option) (Generator, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewGenerator: func(opts ...spellcards.Option) (Generator, error) {
			return spellcards.New(opts...)
		},
	}
}
