//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests.
func (Test) Unit() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the unit tests with coverage output.
func (Test) Cover() error {
	if _, err := executeCmd("go", withArgs("test", "-cover", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
