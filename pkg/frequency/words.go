package frequency

// Built-in frequency bands, approximating general English word lists. Tier 1
// holds the most frequent function and content words; tiers 2–4 are
// progressively less common. Anything not listed is tier 5.

const tier1Words = `
a about after again all also always am an and any are around as at away back
be because been before being best better big both boy but by call came can
come could day did do does don't down each even every eye eyes face far feel
find first for from get girl give go going gone good got great had hand hard
has have he heart her here him his home how i i'm if in into is it it's just
keep know last leave let life like line little live long look love made make
man many may me mean men more most much my need never new next night no not
now of off oh old on once one only or other our out over own people place
play put right run said same saw say see she should so some something still
such take tell than that the their them then there these they thing things
think this those time to too two under up us use very want was way we well
went were what when where which while who why will with without word work
world would yeah year years yes you your
`

const tier2Words = `
across afraid against ago air alone along already answer anyone anything arm
arms ask asked baby bad bed begin behind believe below beside between black
blue body book born break bring brother brought burn buy car care carry
change child children city close cold color cry dance dark dead dear death
deep die door dream dreams drink drive early earth easy eat end enough ever
everyone everything fall family fast father fear feeling feet fight fill
fine fire floor fly follow food foot forever forget free friend friends full
fun game gave glad gold green grow guess hair half happy head hear heard help
high hold hope horse hot hour house hurt idea inside kid kind kiss knew land
late laugh lay learn less light lie lied listen lonely lose lost loud low
mind miss money moon morning mother move music name near nothing open paper
part party past pay phone picture plan point poor pull rain read ready real
red remember rest ride ring river road rock roll room round sad sea second
seem send set shine ship short show sick side sign sing sister sit sky sleep
slow small smile song soon soul sound speak stand star stars start stay step
stop story street strong sun sure talk tear tears together told tomorrow
tonight took touch town tree true try turn wait wake walk wall war warm
watch water wear weather white whole wild win wind window wish woman women
wonder wrong young
`

const tier3Words = `
ache admit alive angel anger angry apart arrive ashes attack avoid awake
beat beauty beg belong bend bitter blade blame bleed blind blood bloom boat
bone border bottle brain brave breath breathe bridge bright broken burden
calm candle chain chance chase cheat chest choice circle clear climb cloud
clouds coast comfort crash crazy crowd crown cruel dare darkness dawn
deny desire destroy diamond dirt distance doubt drown dust edge empty escape
faith fake fate fever field flame flesh flight flow flower frozen ghost gift
glass glory grace grave guilt gun heaven hell hero hide hunger hungry ice
island jealous journey joy judge kingdom knee knife lace lightning lips
lover luck machine magic master memory mercy midnight mirror mistake
moment mountain mouth naked nature ocean pain painted pale path peace pillow
pity poison pray pride prison promise proud queen quiet rage reason regret
rescue roar rope rose rough ruin rush sacred safe sail salt scar scream
secret shade shadow shake shame shelter shore shot silence silent silver sin
skin smoke soft soldier sorrow spark spell spirit storm stranger sweet
sword taste tender thunder tide tired trace trust truth velvet voice wander
wave waves weak whisper wing wings winter wolf wound
`

const tier4Words = `
abandon absence abyss addiction alibi altar amber anthem apathy ashore
avalanche banish beacon betray blossom bruise catapult cathedral cavalry
chaos chariot crimson crusade cynical debris decay defiance delirium demise
desolate devour dwell eclipse elegy embers embrace enigma envy eternity
euphoria exile famine fragile frenzy gallows glimmer gospel haunt havoc hollow
horizon hymn idol illusion inferno ivory labyrinth lament limbo lullaby
maiden malice marrow martyr masquerade meadow melancholy mirage monsoon
myriad nectar nostalgia oblivion omen orchard paradox pendulum phantom
pilgrim plague prophecy quarrel quiver rapture ravage reckless relic remorse
requiem reverie riddle sanctuary scarlet seraph serenade shackle shrine
siren solace solitude sovereign sparrow specter spiral surrender tempest
thorn throne torment tranquil treason tremble twilight tyrant valley vanish
vengeance venom vessel vigil villain vow wilderness wither wreckage zenith
`
