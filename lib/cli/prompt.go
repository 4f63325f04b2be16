package cli

import "github.com/manifoldco/promptui"

type Prompter interface {
	// Prompt reads one line. defaultValue pre-fills the field and stays editable.
	Prompt(label string, defaultValue string) (string, error)
}

type PromptuiPrompter struct{}

func (PromptuiPrompter) Prompt(label string, defaultValue string) (string, error) {
	prm := promptui.Prompt{
		Label:     label,
		Default:   defaultValue,
		AllowEdit: true,
	}
	return prm.Run()
}
