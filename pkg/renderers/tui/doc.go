// Package tui collects form values in a terminal. A Session prompts each
// field through a PromptDriver (survey by default), validates every answer as
// it is given and runs the submission pass before serializing the values as
// JSON, form-urlencoded or plain text.
package tui
