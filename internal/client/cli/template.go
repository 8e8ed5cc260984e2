package cli

const usageText = `Consistency Client

Usage:
  consistency [OPTIONS] COMMAND

Options:
  --version          Show version information
  --server URL       Sync server URL (default: $CONSISTENCY_SERVER)
  --api-key KEY      Sync server API key (default: $CONSISTENCY_API_KEY)
  --db PATH          Path to local database (default: consistency.db)

Commands:
  add <name>             Add new habit
  list                   List habits with current streaks
  done <habit> [date]    Mark habit completed (date: YYYY-MM-DD, default today)
  undo <habit> [date]    Remove completion mark
  rename <habit> <name>  Rename habit
  delete <habit>         Delete habit
  stats [habit]          Show completion statistics
  seed generate [n]      Generate new seed phrase (default 12 words)
  seed set               Remember seed phrase (interactive, hidden input)
  seed show              Show account code of the remembered phrase
  seed clear             Forget seed phrase (local data is kept)
  sync                   Run one sync pass against the server
  status                 Show local and sync state

A habit can be referenced by id, unique id prefix, or exact name.

Examples:
  consistency add "Чтение"
  consistency done чтение
  consistency done чтение 2024-03-07
  consistency seed generate
  consistency --server https://example.com sync
`
