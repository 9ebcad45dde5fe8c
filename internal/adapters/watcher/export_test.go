package watcher

var (
	ConvertEventExported  = convertEvent
	WatchableDirsExported = watchableDirs
)
