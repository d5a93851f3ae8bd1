package assimpexport

import (
	"go.uber.org/zap"
)

// TargetFormat is the export format id every conversion writes.
const TargetFormat = "obj"

// Report describes a successful conversion. Counts are copied from the
// imported scene before it is released.
type Report struct {
	Input     string
	Output    string
	Flags     PostProcess
	Meshes    int
	Materials int
	Textures  int
	// Obj is set when the service verifies its output.
	Obj *ObjSummary
}

// Service converts USDZ assets to OBJ through an importer and an exporter.
// The collaborators keep mutable error state, so a Service is not safe for
// concurrent use.
type Service struct {
	importer Importer
	exporter Exporter
	logging  bool
	verify   bool
	logger   *zap.Logger
}

type Option func(*Service)

// WithLogger sets the logger used when logging is enabled.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithVerify makes Run inspect the written OBJ before reporting success.
func WithVerify(verify bool) Option {
	return func(s *Service) {
		s.verify = verify
	}
}

// NewService returns a Service backed by libassimp.
func NewService(enableLogging bool, opts ...Option) *Service {
	return NewServiceWith(NewNativeImporter(), NewNativeExporter(), enableLogging, opts...)
}

// NewServiceWith returns a Service over the given collaborators.
func NewServiceWith(importer Importer, exporter Exporter, enableLogging bool, opts ...Option) *Service {
	s := &Service{
		importer: importer,
		exporter: exporter,
		logging:  enableLogging,
	}
	for _, opt := range opts {
		opt(s)
	}
	switch {
	case !enableLogging:
		s.logger = zap.NewNop()
	case s.logger == nil:
		s.logger = defaultLogger()
	}
	if enableLogging {
		s.logger.Info("logging enabled")
	}
	return s
}

// LoggingEnabled reports whether the service writes diagnostics.
func (s *Service) LoggingEnabled() bool {
	return s.logging
}

// SupportedFormats lists the exporter's formats in registration order.
func (s *Service) SupportedFormats() []ExportFormat {
	n := s.exporter.FormatCount()
	formats := make([]ExportFormat, 0, n)
	for i := 0; i < n; i++ {
		formats = append(formats, s.exporter.FormatDescription(i))
	}
	return formats
}

// ListSupportedFormats lists the exporter's formats as "<id> - <description>".
func (s *Service) ListSupportedFormats() []string {
	formats := s.SupportedFormats()
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = f.String()
	}
	return out
}

// Convert imports inputPath and exports it to outputPath as OBJ. Failures
// are reported through the return value and LastError.
func (s *Service) Convert(inputPath, outputPath string) bool {
	_, err := s.Run(inputPath, outputPath)
	return err == nil
}

// Run performs the same conversion as Convert and returns a typed result.
// Errors are always *ConvertError.
func (s *Service) Run(inputPath, outputPath string) (*Report, error) {
	s.logger.Info("converting",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Stringer("flags", ConvertFlags))

	scene := s.importer.ReadFile(inputPath, ConvertFlags)
	if scene == nil {
		return nil, s.fail(&ConvertError{Kind: ImportFailure, Stage: StageImport, Path: inputPath}, s.importer.ErrorString())
	}
	defer scene.Release()

	if scene.Incomplete() {
		return nil, s.fail(&ConvertError{Kind: IncompleteScene, Stage: StageImport, Path: inputPath}, s.importer.ErrorString())
	}
	if !scene.HasRootNode() {
		return nil, s.fail(&ConvertError{Kind: MissingRootNode, Stage: StageImport, Path: inputPath}, s.importer.ErrorString())
	}

	report := &Report{
		Input:     inputPath,
		Output:    outputPath,
		Flags:     ConvertFlags,
		Meshes:    scene.NumMeshes(),
		Materials: scene.NumMaterials(),
		Textures:  scene.NumTextures(),
	}
	s.logger.Info("imported scene",
		zap.Int("meshes", report.Meshes),
		zap.Int("materials", report.Materials),
		zap.Int("textures", report.Textures))

	if code := s.exporter.Export(scene, TargetFormat, outputPath); code != ReturnSuccess {
		return nil, s.fail(&ConvertError{Kind: ExportFailure, Stage: StageExport, Path: outputPath, Code: code}, s.exporter.ErrorString())
	}
	s.logger.Info("exported scene", zap.String("output", outputPath), zap.String("format", TargetFormat))

	if s.verify {
		summary, err := InspectObj(outputPath)
		if err != nil {
			return nil, s.fail(&ConvertError{Kind: ExportFailure, Stage: StageVerify, Path: outputPath, cause: err}, err.Error())
		}
		report.Obj = summary
		s.logger.Info("verified output",
			zap.Int("vertices", summary.Vertices),
			zap.Int("faces", summary.Faces))
	}
	return report, nil
}

func (s *Service) fail(ce *ConvertError, message string) *ConvertError {
	if message == "" {
		message = NoErrorString
	}
	ce.Message = message
	fields := []zap.Field{
		zap.String("stage", ce.Stage),
		zap.Stringer("kind", ce.Kind),
		zap.String("path", ce.Path),
		zap.String("error", message),
	}
	if ce.Stage == StageExport {
		fields = append(fields, zap.Stringer("code", ce.Code))
	}
	s.logger.Error("conversion failed", fields...)
	return ce
}

// LastError returns the importer's error string prefixed "Import: ", else
// the exporter's prefixed "Export: ", else "". It reads the collaborators'
// current state, so call it right after the conversion of interest.
func (s *Service) LastError() string {
	if msg := s.importer.ErrorString(); msg != "" {
		return "Import: " + msg
	}
	if msg := s.exporter.ErrorString(); msg != "" {
		return "Export: " + msg
	}
	return ""
}
