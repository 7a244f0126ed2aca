package merge

import (
	"github.com/rs/zerolog"
	"github.com/teplostanski/mergeful/pkg/errors"
	"github.com/teplostanski/mergeful/pkg/filesystem"
	"github.com/teplostanski/mergeful/pkg/logging"
	"github.com/teplostanski/mergeful/pkg/types"
)

// State names a step of a merge invocation
type State string

const (
	StateIdle             State = "idle"
	StateResolvingSource  State = "resolving_source"
	StateTransforming     State = "transforming"
	StateReadingTemplate  State = "reading_template"
	StateSubstituting     State = "substituting"
	StateWriting          State = "writing"
	StateDone             State = "done"
	StateRecoveredFailure State = "recovered_failure"
)

// Options holds the collaborators of an invocation. Zero values select the
// OS filesystem, a sink that writes to the component logger, and the
// "merge" component logger.
type Options struct {
	FileSystem types.FS
	Sink       Sink
	Logger     *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		logger := logging.GetLogger("merge")
		o.Logger = &logger
	}
	if o.FileSystem == nil {
		o.FileSystem = filesystem.NewOS()
	}
	if o.Sink == nil {
		o.Sink = LoggerSink{Logger: *o.Logger}
	}
	return o
}

// Include runs one merge invocation.
//
// Failures while validating the request, resolving the source, transforming
// it or reading the template are written to the sink and recorded in the
// outcome; the returned error is nil. A failed write is returned as a fatal
// error and nothing is written to the sink for it.
func Include(req types.MergeRequest, opts Options) (types.MergeOutcome, error) {
	opts = opts.withDefaults()
	logger := opts.Logger.With().
		Str("template", req.TemplatePath).
		Str("output", req.OutputPath).
		Logger()

	done := logging.LogOperationStart(logger, "include")
	defer done()
	enter(logger, StateIdle)

	outcome := types.MergeOutcome{OutputPath: req.OutputPath}

	result, err := prepare(req, opts.FileSystem, logger)
	if err != nil {
		enter(logger, StateRecoveredFailure)
		recoverFailure(opts.Sink, logger, err)
		outcome.Failure = err
		return outcome, nil
	}

	enter(logger, StateWriting)
	if err := WriteOutput(opts.FileSystem, opts.Sink, req.OutputPath, result); err != nil {
		logger.Error().
			Err(err).
			Str("code", string(errors.GetErrorCode(err))).
			Msg("Output write failed")
		return outcome, err
	}

	outcome.Written = true
	outcome.Bytes = len(result)
	enter(logger, StateDone)
	logger.Info().Int("bytes", outcome.Bytes).Msg("Merge completed")
	return outcome, nil
}

// prepare runs every stage that sits inside the recovery boundary and
// returns the text to write
func prepare(req types.MergeRequest, fsys types.FS, logger zerolog.Logger) (string, error) {
	if req.Source.Text == "" && req.Source.Path == "" {
		return "", errors.New(errors.ErrMissingSource, MsgTextOrPathRequired)
	}
	if req.Label == "" {
		return "", errors.New(errors.ErrInvalidLabel, MsgLabelRequired)
	}

	enter(logger, StateResolvingSource)
	content, err := ResolveSource(fsys, req.Source)
	if err != nil {
		return "", err
	}

	enter(logger, StateTransforming)
	text, err := Transform(content, req.Transform)
	if err != nil {
		return "", err
	}

	enter(logger, StateReadingTemplate)
	template, err := ReadTemplate(fsys, req.TemplatePath)
	if err != nil {
		return "", err
	}

	enter(logger, StateSubstituting)
	return Substitute(template, req.Label, text), nil
}

// recoverFailure prints a swallowed error on the sink
func recoverFailure(sink Sink, logger zerolog.Logger, err error) {
	message := err.Error()
	if message == "" {
		message = MsgUnknownRead
	}

	logger.Info().
		Err(err).
		Str("code", string(errors.GetErrorCode(err))).
		Interface("details", errors.GetErrorDetails(err)).
		Msg("Merge stopped before writing")

	sink.Failure(MsgErrorPrefix + message)
}

func enter(logger zerolog.Logger, state State) {
	logger.Debug().Str("state", string(state)).Msg("Entering state")
}
