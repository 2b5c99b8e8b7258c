package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/config"
	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
)

var (
	pwLength     int
	pwUpper      bool
	pwLower      bool
	pwDigits     bool
	pwSymbols    bool
	pwCustom     string
	pwMinUpper   int
	pwMinLower   int
	pwMinDigits  int
	pwMinSymbols int
	pwMinCustom  int

	ppMode       string
	ppWords      int
	ppTarget     int
	ppSeparator  string
	ppCapitalize bool
	ppNumbers    bool
	ppMinNumbers int
	ppWordList   string
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// flagNames maps option struct fields to the flags that set them.
var flagNames = map[string]string{
	"Length":        "--length",
	"CustomSymbols": "--custom",
	"MinUpper":      "--min-upper",
	"MinLower":      "--min-lower",
	"MinDigits":     "--min-digits",
	"MinSymbols":    "--min-symbols",
	"MinCustom":     "--min-custom",
	"Mode":          "--mode",
	"Words":         "--words",
	"TargetLength":  "--target",
	"Separator":     "--separator",
	"MinNumbers":    "--min-numbers",
}

func bindPasswordFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&pwLength, "length", "l", defaultLength, "password length")
	f.BoolVar(&pwUpper, "upper", true, "include uppercase letters")
	f.BoolVar(&pwLower, "lower", true, "include lowercase letters")
	f.BoolVar(&pwDigits, "digits", true, "include digits")
	f.BoolVar(&pwSymbols, "symbols", true, "include symbols "+model.SymbolAlphabet)
	f.StringVar(&pwCustom, "custom", "", "extra symbol set (deduplicated)")
	f.IntVar(&pwMinUpper, "min-upper", 0, "minimum uppercase letters")
	f.IntVar(&pwMinLower, "min-lower", 0, "minimum lowercase letters")
	f.IntVar(&pwMinDigits, "min-digits", 0, "minimum digits")
	f.IntVar(&pwMinSymbols, "min-symbols", 0, "minimum symbols")
	f.IntVar(&pwMinCustom, "min-custom", 0, "minimum custom symbols")
}

func bindPassphraseFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&ppMode, "mode", model.WordCount.String(), "length mode: word-count or character-length")
	f.IntVarP(&ppWords, "words", "w", defaultWords, "number of words (word-count mode)")
	f.IntVarP(&ppTarget, "target", "t", defaultTarget, "target length in characters (character-length mode)")
	f.StringVarP(&ppSeparator, "separator", "s", defaultSeparator, `separator: "-", "_", ".", "space", "none" or up to 3 characters`)
	f.BoolVarP(&ppCapitalize, "capitalize", "c", false, "capitalize each word")
	f.BoolVar(&ppNumbers, "numbers", false, "insert digits between words")
	f.IntVar(&ppMinNumbers, "min-numbers", defaultMinNumbers, "digits to insert, up to one per word boundary")
	f.StringVar(&ppWordList, "wordlist", "builtin", `word list: "builtin", "bip39", a name under the config dir, or a path`)
}

func applyPasswordConfig(cmd *cobra.Command, c config.PasswordConfig) {
	applyIntConfig(cmd, "length", &pwLength, c.Length)
	applyBoolConfig(cmd, "upper", &pwUpper, c.Upper)
	applyBoolConfig(cmd, "lower", &pwLower, c.Lower)
	applyBoolConfig(cmd, "digits", &pwDigits, c.Digits)
	applyBoolConfig(cmd, "symbols", &pwSymbols, c.Symbols)
	applyStringConfig(cmd, "custom", &pwCustom, c.Custom)
	applyIntConfig(cmd, "min-upper", &pwMinUpper, c.MinUpper)
	applyIntConfig(cmd, "min-lower", &pwMinLower, c.MinLower)
	applyIntConfig(cmd, "min-digits", &pwMinDigits, c.MinDigits)
	applyIntConfig(cmd, "min-symbols", &pwMinSymbols, c.MinSymbols)
	applyIntConfig(cmd, "min-custom", &pwMinCustom, c.MinCustom)
}

func applyPassphraseConfig(cmd *cobra.Command, c config.PassphraseConfig) {
	applyStringConfig(cmd, "mode", &ppMode, c.Mode)
	applyIntConfig(cmd, "words", &ppWords, c.Words)
	applyIntConfig(cmd, "target", &ppTarget, c.Target)
	applyStringConfig(cmd, "separator", &ppSeparator, c.Separator)
	applyBoolConfig(cmd, "capitalize", &ppCapitalize, c.Capitalize)
	applyBoolConfig(cmd, "numbers", &ppNumbers, c.Numbers)
	applyIntConfig(cmd, "min-numbers", &ppMinNumbers, c.MinNumbers)
	applyStringConfig(cmd, "wordlist", &ppWordList, c.WordList)
}

func passwordOptions() model.PasswordOptions {
	return model.PasswordOptions{
		Length:        pwLength,
		Upper:         pwUpper,
		Lower:         pwLower,
		Digits:        pwDigits,
		Symbols:       pwSymbols,
		CustomSymbols: pwCustom,
		MinUpper:      pwMinUpper,
		MinLower:      pwMinLower,
		MinDigits:     pwMinDigits,
		MinSymbols:    pwMinSymbols,
		MinCustom:     pwMinCustom,
	}
}

func passphraseOptions() model.PassphraseOptions {
	return model.PassphraseOptions{
		Mode:         strings.ToLower(strings.TrimSpace(ppMode)),
		Words:        ppWords,
		TargetLength: ppTarget,
		Separator:    resolveSeparator(ppSeparator),
		Capitalize:   ppCapitalize,
		Numbers:      ppNumbers,
		MinNumbers:   ppMinNumbers,
		WordList:     ppWordList,
	}
}

// resolveSeparator maps preset names onto separators.
func resolveSeparator(s string) string {
	switch strings.ToLower(s) {
	case "space":
		return " "
	case "none":
		return ""
	}
	return s
}

func validateOptions(opts any) error {
	if err := validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			name := flagNames[fe.Field()]
			if name == "" {
				name = fe.Field()
			}
			msgs = append(msgs, describeViolation(name, fe))
		}
		return fmt.Errorf("invalid options: %s", strings.Join(msgs, "; "))
	}
	if pp, ok := opts.(model.PassphraseOptions); ok && pp.Numbers && pp.Mode == model.WordCount.String() {
		if limit := generator.MaxNumberCount(pp.Words); pp.MinNumbers > limit {
			return fmt.Errorf("invalid options: --min-numbers must be at most %d for %d words", limit, pp.Words)
		}
	}
	return nil
}

func describeViolation(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", name, fe.Tag())
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func loadFileConfig() (config.FileConfig, error) {
	cfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func validateCount() error {
	if outCount < 1 || outCount > maxCount {
		return fmt.Errorf("--count must be between 1 and %d", maxCount)
	}
	return nil
}
