/*
Package operation implements the notepaste commands run against one note.

	+-------------+
	|  Operator   |
	| (commands)  |
	+------+------+
	       |
	+------+------+      +-------------+
	| embed.Engine| ---> | AssetStore  |
	| (reconcile) |      +-------------+
	+------+------+
	       |
	+------+------+      +-------------+
	|  transform  | ---> | PasteService|
	| (document)  |      +-------------+
	+-------------+

🎯 Commands:
  - Create: note without a paste -> mirrored embeds -> new paste -> paste props
  - Update: published note -> re-synced embeds -> paste text replaced
  - Delete: confirm -> embeds purged and paste removed together -> props cleared
  - Purge: confirm -> embeds left by a deleted paste removed
  - Status: local comparison of embeds and cache, no network

🔄 Embed cache:
The cache property is written after the paste call whatever its outcome, so
a failed paste never loses track of uploaded assets.

⚡ Notices:
Every user-visible outcome goes through notice.Notifier. Errors already shown
come back wrapped in NotifiedError.

🔍 Example:

	op, err := operation.New(operation.Options{
		Settings: settings,
		Vault:    v,
		Pastes:   pastes,
		Assets:   assets,
		Notifier: notice.NewConsole(false),
	})
	err = operation.NewRunner().Run(ctx, "create", func(ctx context.Context) error {
		return op.Create(ctx, "notes/today.md")
	})
*/
package operation
