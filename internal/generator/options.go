package generator

import "github.com/verte-zerg/passgen/internal/model"

// ConstraintsFromOptions maps CLI password options onto generation constraints.
// A non-empty custom symbol set enables the custom class.
func ConstraintsFromOptions(opts model.PasswordOptions) model.GenerationConstraints {
	classes := model.DefaultClasses(opts.Upper, opts.Lower, opts.Digits, opts.Symbols, opts.CustomSymbols)
	mins := map[model.ClassKind]int{
		model.ClassUpper:        opts.MinUpper,
		model.ClassLower:        opts.MinLower,
		model.ClassDigit:        opts.MinDigits,
		model.ClassSymbol:       opts.MinSymbols,
		model.ClassCustomSymbol: opts.MinCustom,
	}
	for i := range classes {
		classes[i].MinCount = mins[classes[i].Kind]
	}
	return model.GenerationConstraints{TotalLength: opts.Length, Classes: classes}
}

// PassphraseConstraintsFromOptions maps CLI passphrase options onto constraints.
func PassphraseConstraintsFromOptions(opts model.PassphraseOptions) model.PassphraseConstraints {
	mode := model.WordCount
	if opts.Mode == model.CharacterLength.String() {
		mode = model.CharacterLength
	}
	return model.PassphraseConstraints{
		LengthMode:     mode,
		WordCount:      opts.Words,
		TargetLength:   opts.TargetLength,
		Separator:      opts.Separator,
		Capitalize:     opts.Capitalize,
		IncludeNumbers: opts.Numbers,
		MinNumberCount: opts.MinNumbers,
	}
}
