package cli

var ParseRemoteURLForTest = parseRemoteURL
