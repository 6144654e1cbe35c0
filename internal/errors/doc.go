// Package errors provides the structured error type used across rpg-battle.
//
// Errors carry a Code, a human readable Message, an optional Cause and
// free-form metadata:
//
//	err := errors.InvalidArgument("skill is not known by the active creature").
//	    WithMeta("actor_id", actor.ID).
//	    WithMeta("skill", skill.Name)
//
// Wrapping keeps the code of the wrapped error:
//
//	if _, err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record battle result")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // nothing recorded under that id
//	}
//
// Config validation goes through the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
//
// Layer guidelines:
//   - Repositories return NotFound / InvalidArgument and wrap storage errors.
//   - The engine and orchestrators return InvalidArgument for illegal choices,
//     FailedPrecondition when a battle cannot continue, Aborted when a guard trips.
//   - The CLI prints the error with any validation fields from GetMeta and exits
//     non-zero.
package errors
