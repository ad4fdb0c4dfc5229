package server

var (
	ClientAddressForTest            = clientAddress
	PullRequestEventToInputForTest  = pullRequestEventToInput
	InstallationEventToInputForTest = installationEventToInput
)
