// Package catalog loads ICU message catalogs and serves them per locale.
//
// A [Catalog] is an immutable snapshot mapping locale to message id to
// pattern. Nested documents are flattened with dot separated ids, so
//
//	{"nav": {"home": "Home"}}
//
// becomes the id "nav.home". Files named {locale}/{namespace}.ext prefix
// every id with the namespace: "nav.home" in en/common.json is
// "common.nav.home".
//
// Messages are read by a [Source]: [FSSource] (JSON, YAML and TOML files
// in any fs.FS), [S3Source] (the same file layout under an S3 prefix),
// [RedisSource] (one hash per locale) and [PostgresSource] (the
// intl_messages table, created by [Migrate]). [Load] reads several sources
// concurrently and merges them in order, later sources winning.
//
// A [Store] keeps the current catalog behind an atomic pointer and swaps
// it on [Store.Reload]; a failed reload keeps the previous snapshot. A
// [Scheduler] reloads a store on a cron schedule:
//
//	store, err := catalog.NewStore(ctx, "en", []catalog.Source{catalog.NewFSSource(os.DirFS("locales"))})
//	if err != nil {
//		return err
//	}
//	sched, err := catalog.NewScheduler(store, "*/5 * * * *", logger)
//	if err != nil {
//		return err
//	}
//	sched.Start()
//	defer sched.Stop(ctx)
package catalog
