package appicon

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nativetranslator/appicon/utils"
)

// Ops holds the run options of a complete icon generation.
type Ops struct {
	// Size is the reference resolution the icon is drawn at.
	Size int
	// Dst is the asset catalog directory receiving the images and the manifest.
	Dst string
	// Master optionally receives a copy of the reference image.
	Master string
	// Ico optionally receives a Windows icon.
	Ico string
	// Targets defaults to DefaultTargets.
	Targets []Target
	// Out receives the progress and status messages. Defaults to os.Stderr.
	Out io.Writer
}

// Execute draws the icon, exports every target and the manifest into op.Dst
// and writes the optional extra outputs. It reports the progress on op.Out.
func (c *Composer) Execute(e *Exporter, op *Ops) ([]string, error) {
	out := op.Out
	if out == nil {
		out = os.Stderr
	}
	targets := op.Targets
	if targets == nil {
		targets = DefaultTargets
	}
	now := time.Now()

	spinner := utils.NewSpinner(out, fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ APPICON", utils.StatusMessage),
		utils.DecorateText("⇢ drawing the icon...", utils.DefaultMessage),
	), time.Millisecond*80)
	spinner.Start()

	img, err := c.Compose(op.Size)
	if err != nil {
		spinner.StopMsg = fmt.Sprintf("%s %s %s",
			utils.DecorateText("⚡ APPICON", utils.StatusMessage),
			utils.DecorateText("drawing the icon failed...", utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
		spinner.Stop()
		return nil, err
	}
	spinner.StopMsg = fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ APPICON", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("⇢ %dx%d icon drawn with %s", op.Size, op.Size, c.FontName()), utils.DefaultMessage),
		utils.DecorateText("✔", utils.SuccessMessage),
	)
	spinner.Stop()

	exp := *e
	exp.OnWrite = func(path string, px int) {
		if px > 0 {
			fmt.Fprintf(out, "Generated %s at %dx%d\n",
				utils.DecorateText(filepath.Base(path), utils.SuccessMessage), px, px)
		} else {
			fmt.Fprintf(out, "Generated %s\n", utils.DecorateText(filepath.Base(path), utils.SuccessMessage))
		}
		if e.OnWrite != nil {
			e.OnWrite(path, px)
		}
	}

	paths, err := exp.ExportAll(img, targets, op.Dst)
	if err != nil {
		return paths, err
	}

	if op.Master != "" {
		if err := WriteMaster(op.Master, img); err != nil {
			return paths, err
		}
		paths = append(paths, op.Master)
		fmt.Fprintf(out, "Reference image saved as %s\n", utils.DecorateText(op.Master, utils.SuccessMessage))
	}
	if op.Ico != "" {
		if err := WriteICO(op.Ico, img, e.Filter); err != nil {
			return paths, err
		}
		paths = append(paths, op.Ico)
		fmt.Fprintf(out, "Windows icon saved as %s\n", utils.DecorateText(op.Ico, utils.SuccessMessage))
	}

	fmt.Fprintf(out, "\nAll icons generated in: %s\n", utils.DecorateText(op.Dst, utils.SuccessMessage))
	fmt.Fprintf(out, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return paths, nil
}
