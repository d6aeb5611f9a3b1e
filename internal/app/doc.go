// Package app is the composition root of gratail.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()         TOML config plus flag overrides
//	       ├─────> prefs.Load()          theme, snapshot dir, panes
//	       ├─────> setupLogging()        log.* to a file (tea.LogToFile)
//	       ├─────> waitForFile()         poll with backoff until the log exists
//	       ├─────> logtail.Open()
//	       ├─────> waitForHeader()       first line gives width#height
//	       ├─────> exchange.New()        back/front buffers sized from it
//	       ├─────> go eng.Run()          ingestion loop
//	       ├─────> StartPresenter()      paced Present + stats publication
//	       └─────> ui.Run() | window.Run() | wait (once mode)
//
// # Presentation
//
// Two triggers copy the dirty rectangle to the front buffer: the ingestion
// loop at the end of every batch that applied writes, and the presenter
// ticker. The ticker bounds how stale the display can get while a batch is
// still running; both paths are serialized inside the engine.
//
// # Shutdown
//
// When the display returns (user quit, window closed, or the context was
// cancelled) Run cancels ingestion and waits for it. The presenter is
// stopped before the final stats are published so a late tick never
// overwrites an ingestion error. A snapshot of the front buffer is written
// when -snapshot is set, and always in once mode.
//
// # Once Mode
//
// With Options.Once the log is read as finished: no file wait, no safety
// margin, an unterminated last line is applied, and the loop returns at end
// of file. No display is started.
package app
