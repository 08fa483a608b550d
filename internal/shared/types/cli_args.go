package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	Year          int
	Month         int
	Schedule      string
	ScheduleQuery string
	Rate          float64
	Timezone      string
	JSON          bool
	Interactive   bool
	CleanReport   bool
	Clear         string
	ReportName    string
	ReportType    []string
	Dir           string
	S3Bucket      string
	S3Prefix      string
	AWSProfile    string
	Debug         bool
}

// ClearAll é o valor de Clear que remove o arquivo de configuração inteiro.
const ClearAll = "all"
