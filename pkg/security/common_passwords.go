package security

// commonPasswords lists known-weak passwords and common first names. Entries
// are matched as case-insensitive substrings of the candidate, so short
// entries reject a lot; keep new entries at four characters or more.
var commonPasswords = []string{
	// numeric and keyboard patterns
	"123456", "1234567", "12345678", "123456789", "1234567890", "123123",
	"123321", "654321", "666666", "696969", "111111", "121212", "112233",
	"000000", "7777777", "888888", "987654", "159753", "147258", "142536",
	"qwerty", "qwertyuiop", "asdfgh", "asdfghjkl", "zxcvbn", "zxcvbnm",
	"1qaz2wsx", "qazwsx", "1q2w3e", "1q2w3e4r", "q1w2e3r4", "qweasd",
	"asdf", "azerty", "abcd1234", "a1b2c3", "aa123456", "password1",

	// common passwords
	"password", "passw0rd", "p@ssw0rd", "p@ssword", "pass123", "letmein",
	"welcome", "welcome1", "admin", "administrator", "root", "toor", "login",
	"guest", "changeme", "default", "secret", "master", "access", "trustno1",
	"iloveyou", "lovely", "sunshine", "princess", "monkey", "dragon",
	"shadow", "superman", "batman", "spiderman", "football", "baseball",
	"basketball", "soccer", "hockey", "golf", "tennis", "starwars", "pokemon",
	"mustang", "ferrari", "porsche", "corvette", "harley", "yamaha",
	"freedom", "whatever", "nothing", "qwerty123", "trustme", "hello",
	"hello123", "computer", "internet", "iphone", "samsung", "google",
	"facebook", "twitter", "linkedin", "microsoft", "windows", "apple",
	"cheese", "chocolate", "cookie", "banana", "orange", "pepper", "butter",
	"summer", "winter", "spring", "autumn", "monday", "friday", "sunday",
	"january", "august", "october", "december", "flower", "forever",
	"killer", "hunter", "ranger", "soldier", "tigger", "tiger", "lion",
	"bailey", "buster", "charlie", "maggie", "ginger", "lucky", "rocky",
	"angel", "angels", "blessed", "heaven", "jesus", "christ", "faith",
	"loveme", "lover", "sexy", "hottie", "babygirl", "beautiful", "pretty",
	"princesa", "qwer", "zaq1", "master1", "money", "cash", "dollar",
	"success", "winner", "champion", "legend", "matrix", "ninja", "zombie",
	"wizard", "merlin", "phoenix", "silver", "golden", "diamond", "purple",
	"yellow", "green", "black", "white", "secure", "security", "company",
	"business", "office", "marketing", "digital", "agency", "website",
	"online", "server", "database", "system", "network", "test", "testing",
	"demo", "sample", "example", "temp", "user", "username", "account",

	// common first names
	"james", "john", "robert", "michael", "william", "david", "richard",
	"joseph", "thomas", "charles", "christopher", "daniel", "matthew",
	"anthony", "mark", "donald", "steven", "paul", "andrew", "joshua",
	"kenneth", "kevin", "brian", "george", "timothy", "ronald", "edward",
	"jason", "jeffrey", "ryan", "jacob", "gary", "nicholas", "eric",
	"jonathan", "stephen", "larry", "justin", "scott", "brandon", "benjamin",
	"samuel", "gregory", "alexander", "frank", "patrick", "raymond", "jack",
	"dennis", "jerry", "tyler", "aaron", "jose", "adam", "nathan", "henry",
	"douglas", "zachary", "peter", "kyle", "ethan", "walter", "noah",
	"jeremy", "christian", "keith", "roger", "terry", "austin", "sean",
	"gerald", "carl", "harold", "dylan", "arthur", "lawrence", "jordan",
	"jesse", "bryan", "billy", "bruce", "gabriel", "logan", "albert",
	"willie", "alan", "eugene", "russell", "vincent", "philip", "bobby",
	"johnny", "bradley", "mary", "patricia", "jennifer", "linda",
	"elizabeth", "barbara", "susan", "jessica", "sarah", "karen", "lisa",
	"nancy", "betty", "margaret", "sandra", "ashley", "kimberly", "emily",
	"donna", "michelle", "carol", "amanda", "dorothy", "melissa", "deborah",
	"stephanie", "rebecca", "sharon", "laura", "cynthia", "kathleen",
	"angela", "shirley", "anna", "brenda", "pamela", "emma", "nicole",
	"helen", "samantha", "katherine", "christine", "debra", "rachel",
	"carolyn", "janet", "catherine", "maria", "heather", "diane", "ruth",
	"julie", "olivia", "joyce", "virginia", "victoria", "kelly", "lauren",
	"christina", "joan", "evelyn", "judith", "megan", "andrea", "cheryl",
	"hannah", "jacqueline", "martha", "gloria", "teresa", "madison",
	"frances", "kathryn", "janice", "jean", "abigail", "alice", "judy",
	"sophia", "grace", "denise", "amber", "doris", "marilyn", "danielle",
	"beverly", "isabella", "theresa", "diana", "natalie", "brittany",
	"charlotte", "marie", "kayla", "alexis", "lori",
}
