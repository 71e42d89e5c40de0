package classifier

import (
	"context"
	"fmt"

	"edgenudge/internal/models"
)

// SelfCheck runs the four demo preset fixtures through the session and
// verifies each reproduces its documented label. A failure means the
// artifact and this build disagree (typically a feature-order drift)
// and the model must not be reported ready.
func SelfCheck(ctx context.Context, s Session) error {
	for _, p := range models.Presets {
		class, err := s.Run(ctx, Vector(p.Reading))
		if err != nil {
			return fmt.Errorf("self-check preset %q: %w", p.Name, err)
		}
		label, ok := models.LabelFromClass(class)
		if !ok {
			return fmt.Errorf("self-check preset %q: model emitted unknown class %d", p.Name, class)
		}
		if label != p.ExpectedLabel {
			return fmt.Errorf("self-check preset %q: got %s, want %s", p.Name, label, p.ExpectedLabel)
		}
	}
	return nil
}
