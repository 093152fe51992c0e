package sample

import "fmt"

// Messages is the text shown to the user during a session.
type Messages struct {
	Header  string
	Prompt  string // format string taking the 1-based position
	Invalid string
	Entered string
	StdDev  string // format string taking the formatted standard deviation
}

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

var catalogue = map[string]Messages{
	"en": {
		Header:  "Please enter 10 numbers, pressing Enter after each one:",
		Prompt:  "Enter number %d: ",
		Invalid: "Invalid input, please enter a valid number.",
		Entered: "Numbers entered:",
		StdDev:  "Standard deviation: %s",
	},
	"zh": {
		Header:  "请输入10个数字，每输入一个数字后按回车键：",
		Prompt:  "输入第 %d 个数字: ",
		Invalid: "输入无效，请输入一个有效的数字。",
		Entered: "输入的数字为:",
		StdDev:  "标准差为: %s",
	},
}

// LookupMessages returns the catalogue entry for locale.
func LookupMessages(locale string) (Messages, bool) {
	m, ok := catalogue[locale]
	return m, ok
}

// MessagesFor returns the messages for locale, falling back to English.
func MessagesFor(locale string) Messages {
	if m, ok := catalogue[locale]; ok {
		return m
	}
	return catalogue[DefaultLocale]
}

// PromptFor renders the prompt for the 1-based position i.
func (m Messages) PromptFor(i int) string {
	return fmt.Sprintf(m.Prompt, i)
}

// StdDevLine renders the final result line for an already formatted value.
func (m Messages) StdDevLine(formatted string) string {
	return fmt.Sprintf(m.StdDev, formatted)
}
