// Package prompt collects interactive input and renders run messages.
package prompt

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/catalog"
	"github.com/vimeodl/vimeodl/history"
	"github.com/vimeodl/vimeodl/key"
	"github.com/vimeodl/vimeodl/util"
)

// Survey asks questions on the terminal.
type Survey struct{}

// Link asks for the manifest link.
func (Survey) Link() (string, error) {
	var link string
	err := survey.AskOne(&survey.Input{
		Message: "Link:",
	}, &link, survey.WithValidator(survey.Required))
	return strings.TrimSpace(link), err
}

// Title asks for the free-text title used in the output filename.
func (Survey) Title() (string, error) {
	var title string
	err := survey.AskOne(&survey.Input{
		Message: "Video title here:",
		Suggest: history.SuggestTitles,
	}, &title)
	return title, err
}

// Selection asks for whitespace-separated option numbers.
func (Survey) Selection(_ []catalog.Option) (string, error) {
	var input string
	err := survey.AskOne(&survey.Input{
		Message: "Write numbers here (one video, one audio e.g; 1 4):",
	}, &input)
	return input, err
}

// Pause holds the terminal open until Enter is pressed. It is a no-op when
// disabled or when stdin is not a terminal.
func Pause() {
	if !viper.GetBool(key.CliPauseOnExit) || !util.IsInteractive() {
		return
	}

	var ignored string
	_ = survey.AskOne(&survey.Input{Message: "Press Enter to close.."}, &ignored)
}
