package cli

var NewHTTPServer = newHTTPServer
