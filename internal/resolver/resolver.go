package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/appsweep/internal/fileutil"
	"github.com/harrison/appsweep/internal/logger"
	"github.com/harrison/appsweep/internal/models"
	"github.com/harrison/appsweep/internal/version"
)

// DefaultExtension is the bundle extension matched when none is configured.
const DefaultExtension = ".app"

// Options configures a scan.
type Options struct {
	// Extension is the bundle extension to match (including the dot).
	// Defaults to DefaultExtension when empty.
	Extension string
}

// Scan lists the directory (non-recursive), parses each matching entry
// into a Candidate, groups Candidates by base name, and decides which
// member of each group survives. An unreadable directory is fatal;
// unparseable filenames are logged, counted in the Report, and skipped.
func Scan(dir string, opts Options, log logger.Logger) (*models.Report, error) {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory path: %w", err)
	}

	listing, err := fileutil.ListDirectory(absDir, fileutil.ListOptions{
		Extension:   ext,
		IncludeDirs: true,
	})
	if err != nil {
		return nil, err
	}
	for _, lerr := range listing.Errors {
		log.LogWarn(lerr.Error())
	}

	report := &models.Report{
		RunID:       uuid.New().String(),
		Directory:   absDir,
		Extension:   ext,
		ScannedAt:   time.Now(),
		Scanned:     len(listing.Entries),
		Unparseable: make([]string, 0),
	}

	log.LogInfo(fmt.Sprintf("Found %d %s bundles in %s", len(listing.Entries), ext, absDir))

	// Group candidates by base name. Listing order is sorted, so
	// first-seen within a group is deterministic.
	grouped := make(map[string][]models.Candidate)
	for _, name := range listing.Entries {
		cand, err := parseCandidate(absDir, name, ext)
		if err != nil {
			log.LogWarn(fmt.Sprintf("Could not parse filename: %s", name))
			report.Unparseable = append(report.Unparseable, name)
			continue
		}
		grouped[cand.Base] = append(grouped[cand.Base], cand)
	}

	bases := make([]string, 0, len(grouped))
	for base := range grouped {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	for _, base := range bases {
		group := decide(base, grouped[base])
		report.Groups = append(report.Groups, group)

		if len(group.Delete) == 0 {
			log.LogDebug(fmt.Sprintf("%s: 1 version (no duplicates)", base))
			continue
		}

		log.LogInfo(fmt.Sprintf("Processing duplicates for: %s", base))
		log.LogInfo(fmt.Sprintf("  Keeping: %s (version %s)", group.Keep.Name, group.Keep.RawVersion))
		for _, cand := range group.Delete {
			log.LogInfo(fmt.Sprintf("  Marking for deletion: %s (version %s)", cand.Name, cand.RawVersion))
		}
	}

	return report, nil
}

// decide orders a group's Candidates and selects the survivor. The maximum
// version wins; numeric ties go to the lexicographically greatest raw
// version string (so "1.00" beats "1.0"); fully equal entries keep their
// first-seen order.
func decide(base string, cands []models.Candidate) models.Group {
	sort.SliceStable(cands, func(i, j int) bool {
		if cmp := version.Compare(cands[i].Version, cands[j].Version); cmp != 0 {
			return cmp > 0
		}
		return cands[i].RawVersion > cands[j].RawVersion
	})

	return models.Group{
		Base:   base,
		Keep:   cands[0],
		Delete: cands[1:],
	}
}

// Apply executes (or previews) the deletions a Report calls for. In
// preview mode no filesystem mutation happens and every delete-marked
// Candidate lands in Outcome.Deleted as a would-be deletion. In execute
// mode each Candidate is removed independently: a failure is recorded and
// logged but does not stop the remaining deletions, and a Candidate that
// is already gone is skipped with a warning.
func Apply(report *models.Report, execute bool, log logger.Logger) *models.Outcome {
	start := time.Now()
	outcome := &models.Outcome{
		RunID:   report.RunID,
		Preview: !execute,
	}

	total := report.Duplicates()
	if total == 0 {
		log.LogInfo("No duplicate bundles found to delete.")
		outcome.Duration = time.Since(start)
		return outcome
	}

	if execute {
		log.LogInfo(fmt.Sprintf("Deleting %d duplicate bundles:", total))
	} else {
		log.LogInfo(fmt.Sprintf("DRY RUN: would delete %d duplicate bundles:", total))
	}

	for _, group := range report.Groups {
		for _, cand := range group.Delete {
			if !execute {
				log.LogInfo(fmt.Sprintf("  Would delete: %s", cand.Name))
				outcome.Deleted = append(outcome.Deleted, models.DeletionResult{Candidate: cand})
				continue
			}

			if _, err := os.Lstat(cand.Path); os.IsNotExist(err) {
				log.LogWarn(fmt.Sprintf("  File not found: %s", cand.Name))
				outcome.Skipped = append(outcome.Skipped, cand)
				continue
			}

			// Bundles may be directories, so remove recursively.
			if err := os.RemoveAll(cand.Path); err != nil {
				log.LogError(fmt.Sprintf("  Failed to delete %s: %v", cand.Name, err))
				outcome.Failed = append(outcome.Failed, models.DeletionResult{Candidate: cand, Err: err})
				continue
			}

			log.LogInfo(fmt.Sprintf("  Deleted: %s", cand.Name))
			outcome.Deleted = append(outcome.Deleted, models.DeletionResult{Candidate: cand})
		}
	}

	outcome.Duration = time.Since(start)
	return outcome
}
