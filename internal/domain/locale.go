package domain

// LocaleOption is one choice offered by the language switcher.
type LocaleOption struct {
	DisplayLabel string `json:"label"`
	Code         string `json:"code"`
}

const (
	LocaleChineseSimplified = "chinese_simplified"
	LocaleEnglish           = "english"
)

// LocaleOptions returns the fixed, ordered language choices.
func LocaleOptions() []LocaleOption {
	return []LocaleOption{
		{DisplayLabel: "中文", Code: LocaleChineseSimplified},
		{DisplayLabel: "EN", Code: LocaleEnglish},
	}
}
