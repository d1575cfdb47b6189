// Package errors provides the structured error type used across dnd35-sheet.
//
// Every error carries a Code, a message, optional metadata, and an optional
// wrapped cause:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// # Rules engine failure kinds
//
// The character aggregate distinguishes two kinds of rejected mutation:
//
//   - UnknownIdentifier (CodeNotFound): the request named an ability or skill
//     that does not exist. Callers check with IsNotFound.
//   - InsufficientPoints: the purchase costs more than the pool holds
//     (CodeResourceExhausted), or the resulting score or rank is out of bounds
//     (CodeOutOfRange). Callers check with IsInsufficientPoints.
//
// # Validation
//
// Config structs validate themselves with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", cfg.Name, vb)
//	errors.ValidateEnum("format", cfg.Format, []string{"text", "json"}, vb)
//	return vb.Build()
package errors
