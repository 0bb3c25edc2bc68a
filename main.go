// keycoach is a password toolkit and coaching trainer: it generates
// passwords with a cryptographically secure source, estimates and
// classifies password strength, and drills the habits behind both with
// short lessons and quizzes.
package main

import "github.com/keycoach/keycoach/cmd"

func main() {
	cmd.Execute()
}
