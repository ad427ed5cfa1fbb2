// Package timezone lists IANA time zones with display names, sorted by their
// current UTC offset.
//
// Each entry carries the identifier, a display name built from the identifier
// and its offset, and the offset in seconds:
//
//	Zone{ID: "Pacific/Midway", Name: "Pacific/Midway (UTC -11:00)", Offset: -39600}
//
// Identifiers are read from the system zoneinfo database unless they are passed
// explicitly. The database's zone.tab decides which names are canonical, so
// backward-compatibility aliases such as Asia/Calcutta are not listed; UTC is
// always included when present. When a zoneinfo directory is in use, zone data
// is loaded from that same directory. Offsets are evaluated at a reference instant (time.Now by
// default), so zones observing daylight saving time move between calls made in
// winter and summer. Entries with equal offsets keep their identifier order.
//
// # Usage
//
//	zones, err := timezone.All()
//	if err != nil {
//		return err
//	}
//	for _, z := range zones {
//		fmt.Println(z.Name)
//	}
//
// Pin the identifiers and the instant for reproducible output:
//
//	zones, err := timezone.All(
//		timezone.WithIdentifiers("Europe/Berlin", "America/New_York"),
//		timezone.WithTime(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)),
//	)
//
// Binaries running on hosts without a zoneinfo database can embed one by
// importing time/tzdata and passing the identifiers explicitly.
package timezone
