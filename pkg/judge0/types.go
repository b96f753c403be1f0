package judge0

import "time"

// Language identifies a compiler or interpreter the service supports.
// Languages are read-only catalog data; the client never creates one.
type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	// Only populated by /languages/all and /languages/{id}.
	IsArchived *bool   `json:"is_archived,omitempty"`
	SourceFile *string `json:"source_file,omitempty"`
	CompileCmd *string `json:"compile_cmd,omitempty"`
	RunCmd     *string `json:"run_cmd,omitempty"`
}

// Status is one of the service's fixed execution states, for example
// "In Queue", "Accepted", or "Time Limit Exceeded". Status ids are
// opaque pass-through data; the client does not enumerate or validate
// them.
type Status struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// About is static service metadata.
type About struct {
	Version    string `json:"version"`
	Homepage   string `json:"homepage"`
	SourceCode string `json:"source_code"`
	Maintainer string `json:"maintainer"`
}

// Worker is a load snapshot of one execution queue.
type Worker struct {
	Queue     string `json:"queue"`
	Size      int    `json:"size"`
	Available int    `json:"available"`
	Idle      int    `json:"idle"`
	Working   int    `json:"working"`
	Paused    int    `json:"paused"`
	Failed    int    `json:"failed"`
}

// Submission is the central entity: constructed client-side with input
// fields only, submitted for execution, and read back with the result
// fields populated by the service. One flat shape serves create, read,
// and batch paths; which fields are set depends on the path.
//
// Every optional field is a pointer with omitempty so that unset fields
// are omitted from request bodies entirely — the service rejects
// unexpected nulls. Submissions are value objects: the client never
// mutates one after sending it, and each read produces a fresh value
// keyed by Token.
type Submission struct {
	// Required input fields, always serialized so the service can
	// report their validation errors. When Base64Encoded is set in
	// Config, SourceCode (and the other text fields) must be base64.
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`

	// Optional execution parameters.
	CompilerOptions                      *string  `json:"compiler_options,omitempty"`
	CommandLineArguments                 *string  `json:"command_line_arguments,omitempty"`
	Stdin                                *string  `json:"stdin,omitempty"`
	ExpectedOutput                       *string  `json:"expected_output,omitempty"`
	CPUTimeLimit                         *float64 `json:"cpu_time_limit,omitempty"`
	CPUExtraTime                         *float64 `json:"cpu_extra_time,omitempty"`
	WallTimeLimit                        *float64 `json:"wall_time_limit,omitempty"`
	MemoryLimit                          *int     `json:"memory_limit,omitempty"`
	StackLimit                           *int     `json:"stack_limit,omitempty"`
	MaxProcessesAndOrThreads             *int     `json:"max_processes_and_or_threads,omitempty"`
	EnablePerProcessAndThreadTimeLimit   *bool    `json:"enable_per_process_and_thread_time_limit,omitempty"`
	EnablePerProcessAndThreadMemoryLimit *bool    `json:"enable_per_process_and_thread_memory_limit,omitempty"`
	MaxFileSize                          *int     `json:"max_file_size,omitempty"`
	RedirectStderrToStdout               *bool    `json:"redirect_stderr_to_stdout,omitempty"`
	EnableNetwork                        *bool    `json:"enable_network,omitempty"`
	NumberOfRuns                         *int     `json:"number_of_runs,omitempty"`

	// AdditionalFiles is the content of a zip archive with extra files
	// for the sandbox, opaque to this client.
	AdditionalFiles *string `json:"additional_files,omitempty"`

	// CallbackURL is PUT by the service with the result when execution
	// finishes.
	CallbackURL *string `json:"callback_url,omitempty"`

	// Result fields, populated only by the service on read.
	Token         string     `json:"token,omitempty"`
	Stdout        *string    `json:"stdout,omitempty"`
	Stderr        *string    `json:"stderr,omitempty"`
	CompileOutput *string    `json:"compile_output,omitempty"`
	Message       *string    `json:"message,omitempty"`
	ExitCode      *int       `json:"exit_code,omitempty"`
	ExitSignal    *int       `json:"exit_signal,omitempty"`
	Status        *Status    `json:"status,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`

	// Time and WallTime come back as decimal strings (seconds), Memory
	// as a number (kilobytes); the service formats them that way.
	Time     *string  `json:"time,omitempty"`
	WallTime *string  `json:"wall_time,omitempty"`
	Memory   *float64 `json:"memory,omitempty"`
}
