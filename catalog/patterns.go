package catalog

import "regexp"

// defaultEntries builds the full catalog in declaration order. Order
// matters: it is the tie-breaker when more than one pattern could match a
// line, which is why the narrower "skipped" backstops live after the
// information-rich forms they duplicate, and why collision-prone categories
// are listed from most to least specific.
func defaultEntries() []Entry {
	return []Entry{
		// --- nation lifecycle -------------------------------------------------
		{
			Category: "founded",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ was founded in %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "refound",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ was refounded in %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "cte",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ ceased to exist in %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "move",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ relocated from %%([\w-]+)%% to %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Destination(2), Origin(3)}},
		},
		{
			Category: "reclassify",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@'s government was reclassified from "([^"]+)" to "([^"]+)"$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2, 3)}},
		},

		// --- WA Delegate / membership --------------------------------------
		{
			Category: "ndel",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ became (?:the )?WA Delegate of %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Receptor(1), Origin(2)}},
		},
		{
			Category: "delunseat",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ lost WA Delegate status in %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Receptor(1), Origin(2)}},
		},
		{
			Category: "wabadmit",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ was admitted to the World Assembly$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1)}},
		},
		{
			Category: "wabresign",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ resigned from the World Assembly$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1)}},
		},
		{
			Category: "wabapply",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ applied to join the World Assembly$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1)}},
		},
		{
			Category: "endo",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ endorsed @@([\w-]+)@@$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Receptor(2)}},
		},
		{
			Category: "unendo",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ withdrew (?:its|their) endorsement of @@([\w-]+)@@$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Receptor(2)}},
		},

		// --- regional officers & authority (capture-heavy categories) -----
		{
			Category: "rochname",
			Pattern: regexp.MustCompile(
				`^@@([\w-]+)@@ (granted|removed) (.+?) authority(?: and removed (.+?) authority from @@([\w-]+)@@)? and renamed the office from "([^"]*)" to "([^"]*)" in %%([\w-]+)%%$`,
			),
			Recipe: Recipe{
				Directives: []directive{BucketOrigin(), Actor(1), Receptor(5), Data(6, 7), Origin(8)},
				Process:    authorityDiffProcessor(2, 3, 4),
			},
		},
		{
			Category: "rochange",
			Pattern: regexp.MustCompile(
				`^@@([\w-]+)@@ (granted|removed) (.+?) authority(?: and removed (.+?) authority from @@([\w-]+)@@)? in %%([\w-]+)%%$`,
			),
			Recipe: Recipe{
				Directives: []directive{BucketOrigin(), Actor(1), Receptor(5), Origin(6)},
				Process:    authorityDiffProcessor(2, 3, 4),
			},
		},
		{
			Category: "rdelauth",
			Pattern: regexp.MustCompile(
				`^@@([\w-]+)@@ (granted|removed) (.+?) authority(?: and removed (.+?) authority)? (?:to|from) @@([\w-]+)@@ in %%([\w-]+)%%$`,
			),
			Recipe: Recipe{
				Directives: []directive{BucketOrigin(), Actor(1), Origin(6)},
				Process:    rdelauthProcessor(2, 3, 4, 5),
			},
		},
		{
			Category: "roadd",
			Pattern: regexp.MustCompile(
				`^@@([\w-]+)@@ appointed @@([\w-]+)@@ as a Regional Officer(?: of %%([\w-]+)%%)?, with authority over (.+)$`,
			),
			Recipe: Recipe{
				Directives: []directive{BucketOrigin(), Actor(1), Receptor(2), Origin(3)},
				Process:    roaddProcessor(4),
			},
		},
		{
			Category: "rodismiss",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ dismissed @@([\w-]+)@@ as a Regional Officer of %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Receptor(2), Origin(3)}},
		},
		{
			Category: "rresign",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ resigned as a Regional Officer of %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "rfounder",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ seized the position of Founder of %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "rpassword",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ password-protected %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "runpassword",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ removed password protection from %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "rname",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ renamed the region from "([^"]+)" to "([^"]+)"$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2, 3)}},
		},
		{
			Category: "rflag",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ changed the regional flag of %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "rbanner",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ changed the regional banner of %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},

		// --- World Assembly resolutions -------------------------------------
		{
			Category: "rsfloor",
			Pattern: regexp.MustCompile(
				`^The World Assembly resolution "(.+?)" \((.+?)\)(?:, co-?authored by (.+?))? has reached quorum and entered voting$`,
			),
			Recipe: Recipe{Process: rsfloorProcessor(3)},
		},
		{
			Category: "rspass",
			Pattern: regexp.MustCompile(
				`^The World Assembly has passed "(.+?)" \((.+?)\) as (?:a|the) ([\w ]+?) Resolution: (\d+(?:,\d+)*) for to (\d+(?:,\d+)*) against$`,
			),
			Recipe: Recipe{Process: strippedListProcessor(4, 5)},
		},
		{
			Category: "rsfail",
			Pattern: regexp.MustCompile(
				`^The World Assembly has rejected "(.+?)" \((.+?)\): (\d+(?:,\d+)*) in favor to (\d+(?:,\d+)*) against$`,
			),
			Recipe: Recipe{Process: strippedListProcessor(3, 4)},
		},
		{
			Category: "rdiscard",
			Pattern: regexp.MustCompile(
				`^The World Assembly has discarded "(.+?)" \((.+?)\): (\d+(?:,\d+)*) in favor to (\d+(?:,\d+)*) against$`,
			),
			Recipe: Recipe{Process: strippedListProcessor(3, 4)},
		},
		{
			Category: "rswithdraw",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ withdrew "(.+?)" from the floor$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Data(2)}},
		},

		// --- census / cosmetics ----------------------------------------------
		{
			Category: "chcensus",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ was ranked in the (.+)$`),
			Recipe: Recipe{
				Directives: []directive{BucketOrigin(), Actor(1)},
				Process:    chcensusProcessor(2),
			},
		},
		{
			Category: "chfield",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ changed its national settings(.*)$`),
			Recipe: Recipe{
				Directives: []directive{BucketOrigin(), Actor(1)},
				Process:    chfieldProcessor(2),
			},
		},
		{
			Category: "chbanner",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ changed a custom banner$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1)}},
		},
		{
			Category: "chflag",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ altered its national flag$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1)}},
		},
		{
			Category: "chmotto",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ changed its national motto to "([^"]*)"$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2)}},
		},
		{
			Category: "chcapital",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ changed its capital to "([^"]*)"$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2)}},
		},
		{
			Category: "chdispatch",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ published "(.+?)"$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2)}},
		},
		{
			Category: "chpoll",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ created a new poll in %%([\w-]+)%%: "(.+?)"$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2), Data(3)}},
		},

		// --- embassies ---------------------------------------------------------
		{
			Category: "embproposed",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ proposed constructing embassies between %%([\w-]+)%% and %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2), Destination(3)}},
		},
		{
			Category: "embaccept",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ agreed to construct embassies between %%([\w-]+)%% and %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2), Destination(3)}},
		},
		{
			Category: "embcomplete",
			Pattern:  regexp.MustCompile(`^Embassy established between %%([\w-]+)%% and %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Origin(1), Destination(2)}},
		},
		{
			Category: "embabort",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ aborted construction of embassies between %%([\w-]+)%% and %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2), Destination(3)}},
		},
		{
			Category: "embclose",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ ordered the closure of embassies between %%([\w-]+)%% and %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2), Destination(3)}},
		},
		{
			Category: "embcancel",
			Pattern:  regexp.MustCompile(`^Embassy (?:cancelled|closed) between %%([\w-]+)%% and %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Origin(1), Destination(2)}},
		},

		// --- RMB & tags ---------------------------------------------------------
		{
			Category: "rmbpost",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ lodged (?:a|an) (?:suggestion|complaint|commendation|condemnation) (?:on|against) %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "rtag",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ added the "([^"]+)" tag to %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(3), Data(2)}},
		},
		{
			Category: "runtag",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ removed the "([^"]+)" tag from %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(3), Data(2)}},
		},
		{
			Category: "rmbnsupp",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ suppressed a post on the %%([\w-]+)%% Regional Message Board$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "rmbrsupp",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ unsuppressed a post on the %%([\w-]+)%% Regional Message Board$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},

		// --- national settings (additional forms) ----------------------------
		{
			Category: "law",
			Pattern:  regexp.MustCompile(`^Following new legislation in @@([\w-]+)@@, (.+)$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2)}},
		},
		{
			Category: "nbanner",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ created a custom banner$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1)}},
		},
		{
			Category: "rvfield",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ revoked its national (faith|leader|capital)$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2)}},
		},
		{
			Category: "chinf",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@'s influence in %%([\w-]+)%% (rose|fell) from "([^"]+)" to "([^"]+)"$`),
			Recipe:   Recipe{Directives: []directive{Receptor(1), Origin(2), Data(3, 4, 5)}},
		},

		// --- embassies (additional forms) --------------------------------------
		{
			Category: "ewish",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ indicated that %%([\w-]+)%% did not wish to close its embassy with %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2), Destination(3)}},
		},
		{
			Category: "ereject",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ rejected a request from %%([\w-]+)%% for an embassy with %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Destination(2), Origin(3)}},
		},
		{
			Category: "epull",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ withdrew a request for embassies between %%([\w-]+)%% and %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2), Destination(3)}},
		},
		{
			Category: "euabort",
			Pattern:  regexp.MustCompile(`^Construction of embassies aborted between %%([\w-]+)%% and %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Origin(1), Destination(2)}},
		},

		// --- ejections & bans --------------------------------------------------
		{
			Category: "eject",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ was ejected from %%([\w-]+)%% by @@([\w-]+)@@$`),
			Recipe:   Recipe{Directives: []directive{Receptor(1), Origin(2), Actor(3)}},
		},
		{
			Category: "banject",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ was ejected and banned from %%([\w-]+)%% by @@([\w-]+)@@$`),
			Recipe:   Recipe{Directives: []directive{Receptor(1), Origin(2), Actor(3)}},
		},
		{
			Category: "ban",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ banned @@([\w-]+)@@ from %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Receptor(2), Origin(3)}},
		},
		{
			Category: "unban",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ removed @@([\w-]+)@@ from the regional ban list in %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Receptor(2), Origin(3)}},
		},
		{
			Category: "changepw",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ changed the regional password in %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},

		// --- region lifecycle & governors ---------------------------------------
		{
			Category: "rfound",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ founded the region %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "rupdate",
			Pattern:  regexp.MustCompile(`^%%([\w-]+)%% updated$`),
			Recipe:   Recipe{Directives: []directive{Origin(1)}},
		},
		{
			Category: "rfeature",
			Pattern:  regexp.MustCompile(`^%%([\w-]+)%% became the Featured Region of the day$`),
			Recipe:   Recipe{Directives: []directive{Origin(1)}},
		},
		{
			Category: "stgovadd",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ became Governor of %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},
		{
			Category: "govabd",
			Pattern:  regexp.MustCompile(`^Governor @@([\w-]+)@@ abdicated$`),
			Recipe:   Recipe{Directives: []directive{Actor(1)}},
		},
		{
			Category: "rnewgov",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ succeeded @@([\w-]+)@@ as Governor of %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Receptor(2), Origin(3)}},
		},
		{
			Category: "modkick",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ was removed from %%([\w-]+)%% by moderation$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2)}},
		},

		// --- World Assembly membership & voting (additional forms) -------------
		{
			Category: "wkick",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ was ejected from the WA for rule violations$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1)}},
		},
		{
			Category: "wavote",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ voted (for|against) the World Assembly Resolution "(.+)"$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2, 3)}},
		},
		{
			Category: "wrvote",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ withdrew its vote on the World Assembly Resolution "(.+)"$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2)}},
		},
		{
			Category: "rsapp",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ approved the World Assembly proposal "(.+)"$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2)}},
		},
		{
			Category: "rsremapp",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ withdrew its approval for the World Assembly proposal "(.+)"$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Data(2)}},
		},

		// --- founderless/map endorsement board (additional forms) -------------
		{
			Category: "mendo",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ endorsed &&([\w-]+)&&$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Receptor(2)}},
		},
		{
			Category: "munendo",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ removed its endorsement from &&([\w-]+)&&$`),
			Recipe:   Recipe{Directives: []directive{BucketOrigin(), Actor(1), Receptor(2)}},
		},

		// --- annexation ----------------------------------------------------------
		{
			Category: "annexreq",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ sent a demand to annex %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Destination(2)}},
		},
		{
			Category: "annexrej",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ rejected a demand for %%([\w-]+)%% to be annexed into %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Origin(2), Destination(3)}},
		},
		{
			Category: "annexacc",
			Pattern:  regexp.MustCompile(`^@@([\w-]+)@@ accepted a demand to be annexed by %%([\w-]+)%%$`),
			Recipe:   Recipe{Directives: []directive{Actor(1), Destination(2)}},
		},

		// --- skipped backstops (duplicate wire lines, declared after the
		// information-rich forms above so the primary pattern wins stage-1
		// selection when both could match) -------------------------------------
		{
			Category: "skipped",
			Pattern:  regexp.MustCompile(`^Annexed by %%([\w-]+)%%$`),
			Recipe:   Recipe{},
		},
		{
			Category: "skipped",
			Pattern:  regexp.MustCompile(`^Ceased to operate as .*$`),
			Recipe:   Recipe{},
		},
		{
			Category: "skipped",
			Pattern:  regexp.MustCompile(`^Reclassified from .*$`),
			Recipe:   Recipe{},
		},
	}
}

