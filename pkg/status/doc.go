/*
Package status manages file storage and status tracking for cssvar.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           |  Logs   |
	| (Storage) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Manages file system operations (read, atomic write, existence checks)
- Creates and restores backup artifacts (original path + suffix)
- Tracks per-file outcomes (converted, unchanged, missing, restored)
- Writes the .cssvar.lock run summary
- Provides user-friendly progress reporting

🔄 Flow:
1. Receives transformed content from an operation
2. Backs up the original before any overwrite
3. Writes the new content atomically (temp file + rename)
4. Tracks the outcome and reports progress

🤝 Interfaces:
- FileManager: Handles file operations
- StatusReporter: Reports status changes
- FileFormatter: Formats status messages

🔍 Example:

	mgr := status.New(".bak", logger)

	content, err := mgr.ReadFile(ctx, path)
	// ... transform ...
	err = mgr.BackupFile(ctx, path)
	err = mgr.WriteFileAtomic(ctx, path, newContent)
*/
package status
